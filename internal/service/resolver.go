package service

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-proton-tweaks/models"
)

// Resolve flattens app's tweaks for vendor. The global layer is always
// applied; when the app configures an override bundle for vendor it is
// layered on top with [ResolveBundle]. [models.VendorUnknown] never selects
// an override.
//
// Resolve is pure and total: it does not mutate app, the result shares no
// memory with it, and identical inputs give deeply equal outputs.
func Resolve(app models.App, vendor models.Vendor) models.ResolvedTweaks {
	return ResolveBundle(app.Tweaks.Base(), app.Tweaks.GPUOverrides().For(vendor))
}

// ResolveBundle layers override (which may be nil) on top of base:
//   - env: override entries are inserted, override wins on key collision;
//   - tricks, args: override entries are appended in order, without dedup;
//   - settings: each explicitly set override field replaces the base field,
//     unset fields keep the base value.
func ResolveBundle(base models.TweakBundle, override *models.TweakBundle) models.ResolvedTweaks {
	resolved := models.ResolvedTweaks{
		Tricks:   slices.Clone(base.Tricks),
		Env:      maps.Clone(base.Env),
		Args:     slices.Clone(base.Args),
		Settings: base.Settings.Clone(),
	}
	if override == nil {
		return resolved
	}

	if len(override.Env) > 0 {
		if resolved.Env == nil {
			resolved.Env = make(map[string]string, len(override.Env))
		}
		maps.Copy(resolved.Env, override.Env)
	}
	resolved.Tricks = append(resolved.Tricks, override.Tricks...)
	resolved.Args = append(resolved.Args, override.Args...)
	resolved.Settings = resolved.Settings.Merge(override.Settings)

	return resolved
}
