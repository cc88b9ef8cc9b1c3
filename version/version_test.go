package version

import (
	"strings"
	"testing"
)

func TestGetVersion_Linked(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.4.0"
	if got := GetVersion(); got != "v1.4.0" {
		t.Errorf("GetVersion() = %q, want v1.4.0", got)
	}
	Version = ""
	if got := GetVersion(); got == "" {
		t.Error("GetVersion() should never be empty")
	}
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no commit", Info{Version: "v1.0.0", Commit: "unknown", Date: "unknown"}, "v1.0.0"},
		{"short commit", Info{Version: "v1.0.0", Commit: "abc", Date: "unknown"}, "v1.0.0"},
		{"commit", Info{Version: "v1.0.0", Commit: "0123456789ab", Date: "unknown"}, "v1.0.0 (0123456)"},
		{"commit and date", Info{Version: "v1.0.0", Commit: "0123456789ab", Date: "2024-01-01"}, "v1.0.0 (0123456, built 2024-01-01)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	var sb strings.Builder
	Fprint(&sb)
	if !strings.HasPrefix(sb.String(), Name+" version ") {
		t.Errorf("Fprint() = %q", sb.String())
	}
}
