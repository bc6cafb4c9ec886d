package cli

import "testing"

func Test_formatBytes_Cases(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"bytes", 512, "512 B"},
		{"kibibytes", 2048, "2.0 KiB"},
		{"mebibytes", 5 * 1024 * 1024, "5.0 MiB"},
		{"gibibytes", 3 * 1024 * 1024 * 1024, "3.0 GiB"},
		{"tebibytes", 2 * 1024 * 1024 * 1024 * 1024, "2.0 TiB"},
		{"fractional", 1536, "1.5 KiB"},
		{"zero", 0, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBytes(tt.input); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func Test_formatKilobytes(t *testing.T) {
	if got := formatKilobytes(1024); got != "1.0 MiB" {
		t.Errorf("formatKilobytes(1024) = %q, want 1.0 MiB", got)
	}
}
