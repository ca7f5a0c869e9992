package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var builtinSeeds = []string{
	"",
	"a",
	"a = b",
	"a.b.c = d(e, f)",
	"std::io::print(\"hi\\n\")",
	"-a + b * c / (d - e) % 2",
	"x == y != z < w <= v > u >= t",
	"a | b ^ c & d << 1 >> 2",
	"!true || false && null",
	"self.x = self.x",
	"1.5; 2; \"\\t\\0\\\\\"",
	"f(a, b",
	"(a",
	"); ;; )",
	"a = = b",
	"\"unterminated",
	"1..2",
	"\"bad \\q escape\"",
	"# comment only\n",
	"日本 = \"語\"",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.rig file under the repository testdata.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".rig" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
