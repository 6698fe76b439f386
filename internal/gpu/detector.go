package gpu

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-proton-tweaks/internal/logger"
	"github.com/MKhiriev/go-proton-tweaks/models"
)

// Driver names reported by the graphics stack for each supported vendor.
const (
	DriverNvidia = "NVIDIA"
	// DriverAMD has not been confirmed on AMD hardware yet; it needs
	// validation against a real adapter before broader matching is added.
	DriverAMD = "AMD"
)

// Detector resolves the vendor of the default graphics adapter.
type Detector struct {
	querier AdapterQuerier
	logger  *logger.Logger
}

// NewDetector returns a Detector backed by querier.
func NewDetector(querier AdapterQuerier, logger *logger.Logger) *Detector {
	return &Detector{querier: querier, logger: logger}
}

// Detect queries the default adapter and maps its driver name with
// [VendorFromDriver]. It never fails: a missing adapter or a query error
// yields [models.VendorUnknown]. A positively identified vendor is logged at
// info level and a failed query at debug level; a missing adapter or an
// unrecognised driver is not logged.
func (d *Detector) Detect(ctx context.Context) models.Vendor {
	info, err := d.querier.DefaultAdapter(ctx)
	if errors.Is(err, ErrNoAdapter) {
		return models.VendorUnknown
	}
	if err != nil {
		d.logger.Debug().Err(err).Msg("gpu adapter query failed")
		return models.VendorUnknown
	}

	vendor := VendorFromDriver(info.Driver)
	if vendor == models.VendorUnknown {
		return vendor
	}

	d.logger.Info().
		Str("vendor", vendor.String()).
		Str("driver", info.Driver).
		Str("adapter", info.Name).
		Msg("detected gpu")

	return vendor
}

// VendorFromDriver maps a driver name onto a vendor. Matching is exact and
// case-sensitive; everything else is [models.VendorUnknown].
func VendorFromDriver(driver string) models.Vendor {
	switch driver {
	case DriverNvidia:
		return models.VendorNvidia
	case DriverAMD:
		return models.VendorAMD
	default:
		return models.VendorUnknown
	}
}
