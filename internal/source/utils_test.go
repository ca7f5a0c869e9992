package source

import (
	"path/filepath"
	"testing"
)

func TestRelativePath(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"nested", filepath.Join(base, "pkg", "a.rig"), "pkg/a.rig"},
		{"same dir", filepath.Join(base, "a.rig"), "a.rig"},
		// выход за base даёт абсолютный путь, а не цепочку ".."
		{"outside", filepath.Join(filepath.Dir(base), "other", "a.rig"), normalizePath(filepath.Join(filepath.Dir(base), "other", "a.rig"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativePath(tt.target, base)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("RelativePath(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		flags FileFlags
	}{
		{"plain", "a = b\n", "a = b\n", 0},
		{"bom", "\xEF\xBB\xBFa", "a", FileHadBOM},
		{"crlf", "a\r\nb\rc", "a\nb\rc", FileNormalizedCRLF},
		{"nfc", "e\u0301", "\u00e9", FileNormalizedNFC},
		{"all", "\xEF\xBB\xBFe\u0301\r\n", "\u00e9\n", FileHadBOM | FileNormalizedCRLF | FileNormalizedNFC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags := Normalize([]byte(tt.in))
			if string(got) != tt.want || flags != tt.flags {
				t.Errorf("Normalize(%q) = %q, %b; want %q, %b", tt.in, got, flags, tt.want, tt.flags)
			}
		})
	}
}
