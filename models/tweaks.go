package models

// TweakSettings holds optional feature toggles. A nil field is "unset" and is
// distinct from an explicit false: an unset override never clears a value
// set by the layer below it.
type TweakSettings struct {
	// Gamemode enables Feral GameMode for the launched application.
	Gamemode *bool `json:"gamemode"`
	// Mangohud enables the MangoHud performance overlay.
	Mangohud *bool `json:"mangohud"`
}

// Merge returns a copy of s with every field that is explicitly set in
// override replacing the corresponding field of s.
func (s TweakSettings) Merge(override TweakSettings) TweakSettings {
	merged := s.Clone()
	if override.Gamemode != nil {
		merged.Gamemode = Bool(*override.Gamemode)
	}
	if override.Mangohud != nil {
		merged.Mangohud = Bool(*override.Mangohud)
	}
	return merged
}

// Clone returns a deep copy of s that shares no pointers with it.
func (s TweakSettings) Clone() TweakSettings {
	var c TweakSettings
	if s.Gamemode != nil {
		c.Gamemode = Bool(*s.Gamemode)
	}
	if s.Mangohud != nil {
		c.Mangohud = Bool(*s.Mangohud)
	}
	return c
}

// Bool returns a pointer to v. It is a convenience for building settings
// literals.
func Bool(v bool) *bool {
	return &v
}

// TweakBundle is one layer of tweaks: either the global layer of an
// application or a GPU-vendor specific override.
type TweakBundle struct {
	// Tricks are opaque winetricks-style verbs, applied in order.
	Tricks []string `json:"tricks"`
	// Env holds environment variables to export before launch.
	Env map[string]string `json:"env"`
	// Args are extra command-line arguments, applied in order.
	Args []string `json:"args"`
	// Settings holds the optional feature toggles of this layer.
	Settings TweakSettings `json:"settings"`
}

// GPUOverrides holds the optional per-vendor override bundles of an
// application. The catalog exposes it as system.gpu_driver.
type GPUOverrides struct {
	AMD    *TweakBundle `json:"amd"`
	Nvidia *TweakBundle `json:"nvidia"`
}

// For returns the override bundle configured for vendor, or nil when the
// vendor is unknown or has no bundle for this application.
func (o GPUOverrides) For(vendor Vendor) *TweakBundle {
	switch vendor {
	case VendorAMD:
		return o.AMD
	case VendorNvidia:
		return o.Nvidia
	default:
		return nil
	}
}

// System groups machine-dependent tweak overrides.
type System struct {
	GPUDriver GPUOverrides `json:"gpu_driver"`
}

// AppTweaks is the full tweak definition of one application as published by
// the catalog: the global layer plus machine-dependent overrides.
type AppTweaks struct {
	Tricks   []string          `json:"tricks"`
	Env      map[string]string `json:"env"`
	Args     []string          `json:"args"`
	Settings TweakSettings     `json:"settings"`
	System   System            `json:"system"`
}

// Base returns the global tweak layer.
func (t AppTweaks) Base() TweakBundle {
	return TweakBundle{
		Tricks:   t.Tricks,
		Env:      t.Env,
		Args:     t.Args,
		Settings: t.Settings,
	}
}

// GPUOverrides returns the vendor keyed override bundles.
func (t AppTweaks) GPUOverrides() GPUOverrides {
	return t.System.GPUDriver
}

// ResolvedTweaks is the flattened, effective tweak configuration for one
// application on the current machine.
type ResolvedTweaks struct {
	Tricks   []string          `json:"tricks"`
	Env      map[string]string `json:"env"`
	Args     []string          `json:"args"`
	Settings TweakSettings     `json:"settings"`
}
