package models

import (
	"maps"
	"slices"
	"strings"
)

// CommandPlaceholder is the token Steam replaces with the game command in
// launch options.
const CommandPlaceholder = "%command%"

// LaunchOptions renders t as a Steam launch options line:
// sorted env assignments, the gamemoderun and mangohud wrappers when
// enabled, the command placeholder and finally the args.
// Tricks are not part of the line; they are installed ahead of launch.
func (t ResolvedTweaks) LaunchOptions() string {
	parts := make([]string, 0, len(t.Env)+len(t.Args)+3)

	for _, key := range slices.Sorted(maps.Keys(t.Env)) {
		parts = append(parts, key+"="+shellQuote(t.Env[key]))
	}
	if t.Settings.Gamemode != nil && *t.Settings.Gamemode {
		parts = append(parts, "gamemoderun")
	}
	if t.Settings.Mangohud != nil && *t.Settings.Mangohud {
		parts = append(parts, "mangohud")
	}

	parts = append(parts, CommandPlaceholder)
	for _, arg := range t.Args {
		parts = append(parts, shellQuote(arg))
	}

	return strings.Join(parts, " ")
}

// shellQuote leaves words made only of shell-safe characters bare and wraps
// everything else in POSIX single quotes.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, isUnsafeShellRune) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isUnsafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("_@%+=:,./-", r):
		return false
	default:
		return true
	}
}
