package gpu

import (
	"context"
	"errors"
)

//go:generate mockgen -source=querier.go -destination=../mock/adapter_querier_mock.go -package=mock

// ErrNoAdapter is returned by an [AdapterQuerier] when the system exposes no
// graphics adapter.
var ErrNoAdapter = errors.New("no graphics adapter available")

// AdapterInfo describes a graphics adapter. Only Driver takes part in vendor
// detection; the other fields are informational.
type AdapterInfo struct {
	// Name is the human-readable device name (e.g. "NVIDIA GeForce RTX 4090").
	Name string
	// Driver is the driver name reported by the graphics stack (e.g. "NVIDIA").
	Driver string
	// DriverInfo is free-form driver version information.
	DriverInfo string
}

// AdapterQuerier enumerates the local graphics stack.
type AdapterQuerier interface {
	// DefaultAdapter returns the adapter a graphics application would pick
	// by default. Returns [ErrNoAdapter] (possibly wrapped) when there is
	// none.
	DefaultAdapter(ctx context.Context) (AdapterInfo, error)
}

type staticQuerier struct {
	info AdapterInfo
}

// NewStaticQuerier returns an [AdapterQuerier] that always reports an adapter
// with the given driver name. An empty driver reports [ErrNoAdapter].
func NewStaticQuerier(driver string) AdapterQuerier {
	return &staticQuerier{info: AdapterInfo{Name: "static", Driver: driver}}
}

func (s *staticQuerier) DefaultAdapter(ctx context.Context) (AdapterInfo, error) {
	if s.info.Driver == "" {
		return AdapterInfo{}, ErrNoAdapter
	}
	return s.info, nil
}
