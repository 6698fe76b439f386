package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvedTweaks_LaunchOptions(t *testing.T) {
	tests := []struct {
		name   string
		tweaks ResolvedTweaks
		want   string
	}{
		{
			name:   "empty",
			tweaks: ResolvedTweaks{},
			want:   "%command%",
		},
		{
			name: "env wrappers and args",
			tweaks: ResolvedTweaks{
				Tricks:   []string{"dotnet48"},
				Env:      map[string]string{"PROTON_USE_WINED3D": "1", "DXVK_ASYNC": "1"},
				Args:     []string{"-skipStartScreen"},
				Settings: TweakSettings{Gamemode: Bool(true), Mangohud: Bool(true)},
			},
			want: "DXVK_ASYNC=1 PROTON_USE_WINED3D=1 gamemoderun mangohud %command% -skipStartScreen",
		},
		{
			name: "disabled and unset settings add no wrapper",
			tweaks: ResolvedTweaks{
				Settings: TweakSettings{Gamemode: Bool(false)},
			},
			want: "%command%",
		},
		{
			name: "values with spaces are quoted",
			tweaks: ResolvedTweaks{
				Env:  map[string]string{"WINEDLLOVERRIDES": "d3d11=n b", "EMPTY": ""},
				Args: []string{"-window mode"},
			},
			want: `EMPTY='' WINEDLLOVERRIDES='d3d11=n b' %command% '-window mode'`,
		},
		{
			name: "shell metacharacters are single quoted",
			tweaks: ResolvedTweaks{
				Env:  map[string]string{"WINEDLLOVERRIDES": "d3d11=n;dxgi=n"},
				Args: []string{"a&b", "x|y", "$(id)", "`id`", "<in>", "*.log", "(sub)"},
			},
			want: `WINEDLLOVERRIDES='d3d11=n;dxgi=n' %command% 'a&b' 'x|y' '$(id)' '` + "`id`" + `' '<in>' '*.log' '(sub)'`,
		},
		{
			name: "embedded single quote is escaped",
			tweaks: ResolvedTweaks{
				Args: []string{"it's"},
			},
			want: `%command% 'it'\''s'`,
		},
		{
			name: "safe punctuation stays bare",
			tweaks: ResolvedTweaks{
				Env:  map[string]string{"PROTON_LOG_DIR": "/tmp/logs", "VKD3D_CONFIG": "dxr,dxr11"},
				Args: []string{"-width=1920", "user@host:1%"},
			},
			want: `PROTON_LOG_DIR=/tmp/logs VKD3D_CONFIG=dxr,dxr11 %command% -width=1920 user@host:1%`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tweaks.LaunchOptions())
		})
	}
}
