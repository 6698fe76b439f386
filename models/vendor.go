package models

import (
	"fmt"
	"strings"
)

// Vendor identifies the graphics-hardware manufacturer whose driver-specific
// overrides apply to the current machine.
type Vendor int

const (
	// VendorUnknown means no supported vendor was identified. Only the global
	// tweak layer is applied.
	VendorUnknown Vendor = iota
	// VendorNvidia selects the "nvidia" override bundle.
	VendorNvidia
	// VendorAMD selects the "amd" override bundle.
	VendorAMD
)

// String returns the lower-case vendor name used in logs and CLI output.
func (v Vendor) String() string {
	switch v {
	case VendorNvidia:
		return "nvidia"
	case VendorAMD:
		return "amd"
	default:
		return "unknown"
	}
}

// ParseVendor converts a vendor name ("nvidia", "amd", "unknown") into a
// [Vendor]. Matching is case-insensitive; the second return value is false for
// unrecognised names.
func ParseVendor(s string) (Vendor, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nvidia":
		return VendorNvidia, true
	case "amd":
		return VendorAMD, true
	case "unknown", "":
		return VendorUnknown, true
	default:
		return VendorUnknown, false
	}
}

// MarshalText encodes v as its name.
func (v Vendor) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a vendor name accepted by [ParseVendor].
func (v *Vendor) UnmarshalText(text []byte) error {
	parsed, ok := ParseVendor(string(text))
	if !ok {
		return fmt.Errorf("unknown gpu vendor %q", text)
	}
	*v = parsed
	return nil
}
