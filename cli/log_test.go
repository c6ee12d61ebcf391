package cli

import (
	"testing"

	"github.com/ardnew/evdef/log"
)

func TestLogConfig_Scan(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "assigned",
			args: []string{"--log-level=debug", "--log-format=json", "parse"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "separate values",
			args: []string{"parse", "--log-level", "warn", "--log-format", "text"},
			want: logConfig{Level: "warn", Format: "text", Pretty: true},
		},
		{
			name: "booleans",
			args: []string{"--no-log-pretty", "--log-caller"},
			want: logConfig{Pretty: false, Caller: true},
		},
		{
			name: "assigned booleans",
			args: []string{"--log-pretty=false", "--no-log-caller=false"},
			want: logConfig{Pretty: false, Caller: true},
		},
		{
			name: "invalid boolean ignored",
			args: []string{"--log-caller=maybe"},
			want: logConfig{Pretty: true},
		},
		{
			name: "stops at terminator",
			args: []string{"--", "--log-level=error"},
			want: logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logConfig{Pretty: true}
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestLogConfig_ScanConfiguresDefault(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	var f logConfig
	f.scan([]string{"--log-level=error", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelError {
		t.Errorf("default level = %v, want error", got)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("default format = %v, want json", got)
	}
}
