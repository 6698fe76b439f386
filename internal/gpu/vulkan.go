package gpu

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

const discreteGPU = "PHYSICAL_DEVICE_TYPE_DISCRETE_GPU"

var deviceHeader = regexp.MustCompile(`^GPU\d+:$`)

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

type vulkanQuerier struct {
	path string
	run  commandRunner
}

// NewVulkanQuerier returns an [AdapterQuerier] that enumerates adapters with
// `vulkaninfo --summary`, found at path (looked up in PATH when it has no
// separator). The default adapter is the first discrete GPU, or the first
// listed device when there is no discrete one.
func NewVulkanQuerier(path string) AdapterQuerier {
	return &vulkanQuerier{path: path, run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (q *vulkanQuerier) DefaultAdapter(ctx context.Context) (AdapterInfo, error) {
	out, err := q.run(ctx, q.path, "--summary")
	if err != nil {
		return AdapterInfo{}, fmt.Errorf("run %s: %w", q.path, err)
	}

	adapters := parseVulkanSummary(out)
	if len(adapters) == 0 {
		return AdapterInfo{}, ErrNoAdapter
	}

	for _, a := range adapters {
		if a.deviceType == discreteGPU {
			return a.AdapterInfo, nil
		}
	}
	return adapters[0].AdapterInfo, nil
}

type vulkanDevice struct {
	AdapterInfo
	deviceType string
}

// parseVulkanSummary extracts the devices listed in the "Devices:" section of
// `vulkaninfo --summary` output, in order.
func parseVulkanSummary(out []byte) []vulkanDevice {
	var (
		devices   []vulkanDevice
		current   *vulkanDevice
		inDevices bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "Devices:" {
			inDevices = true
			continue
		}
		if !inDevices {
			continue
		}

		if deviceHeader.MatchString(line) {
			devices = append(devices, vulkanDevice{})
			current = &devices[len(devices)-1]
			continue
		}
		if current == nil {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "deviceName":
			current.Name = value
		case "driverName":
			current.Driver = value
		case "driverInfo":
			current.DriverInfo = value
		case "deviceType":
			current.deviceType = value
		}
	}

	return devices
}
