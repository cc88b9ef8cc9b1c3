package dirent

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty", input: "", wantErr: false},
		{name: "short", input: "file1.txt", wantErr: false},
		{name: "maximum length", input: strings.Repeat("a", MaxNameLen), wantErr: false},
		{name: "one past maximum", input: strings.Repeat("a", MaxNameLen+1), wantErr: true},
		{name: "far past maximum", input: strings.Repeat("b", 1024), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Errorf("ValidateName() error = %v, want ErrInvalidName", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateName() unexpected error = %v", err)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRegular, "regular"},
		{KindDir, "dir"},
		{KindSymlink, "symlink"},
		{KindUnknown, "unknown"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
