package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses args into a *StructuredConfig using a dedicated FlagSet,
// returning the remaining positional arguments (command and operands).
//
// Flags:
//
//	-u catalog API base URL
//	-request-timeout catalog request timeout (e.g., "30s", "1m")
//	-gpu-driver force the GPU driver name instead of detecting it
//	-vulkaninfo vulkaninfo executable path
//	-d local catalog index DSN (SQLite file path)
//	-sync-interval watch command sync interval (e.g., "1h")
//	-log-level log level (trace, debug, info, warn, error, disabled)
//	-json print results as JSON
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var baseURL string
	var requestTimeout time.Duration
	var gpuDriver string
	var vulkanInfoPath string
	var dsn string
	var syncInterval time.Duration
	var logLevel string
	var jsonOutput bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("protontweaks", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "u", "", "Catalog API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Catalog request timeout (e.g., 30s, 1m)")
	fs.StringVar(&gpuDriver, "gpu-driver", "", "Force GPU driver name (e.g., NVIDIA, AMD)")
	fs.StringVar(&vulkanInfoPath, "vulkaninfo", "", "vulkaninfo executable path")
	fs.StringVar(&dsn, "d", "", "Local catalog index DSN")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Catalog sync interval for watch (e.g., 1h)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		Catalog: Catalog{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		GPU: GPU{
			Driver:         gpuDriver,
			VulkanInfoPath: vulkanInfoPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: dsn,
			},
		},
		Workers:      Workers{SyncInterval: syncInterval},
		Log:          Log{Level: logLevel},
		Output:       Output{JSON: jsonOutput},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
