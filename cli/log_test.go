package cli

import "testing"

func TestLogConfigScan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "assigned",
			args: []string{"--log-level=debug", "--log-format=json", "--log-time=none"},
			want: logConfig{Level: "debug", Format: "json", TimeLayout: "none"},
		},
		{
			name: "separate_values",
			args: []string{"render", "--log-level", "error", "x.conf"},
			want: logConfig{Level: "error"},
		},
		{
			name: "booleans",
			args: []string{"--log-pretty", "--log-caller=true", "--no-log-pretty"},
			want: logConfig{Caller: true, Pretty: false},
		},
		{
			name: "ignored",
			args: []string{"--color=never", "-d", "--logger"},
			want: logConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got logConfig

			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
