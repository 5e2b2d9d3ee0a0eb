package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-a", ":50051", "-m", "redis"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", ":50051"},
		},
		{
			name:         "equals form",
			args:         []string{"-d=postgres://db", "-a", ":50051"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=postgres://db"},
		},
		{
			name:         "order preserved",
			args:         []string{"-s=secret", "-l", "5", "-x", "redis:6379"},
			allowedFlags: []string{"-s", "-l"},
			want:         []string{"-s=secret", "-l", "5"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-q", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-c", "-a"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "empty input",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"bin", "-a", ":1", "-c", "server.json"}, "server.json"},
		{"long equals", []string{"bin", "-config=/etc/adminsettings.json"}, "/etc/adminsettings.json"},
		{"absent", []string{"bin", "-a", ":1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
