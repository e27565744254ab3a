// Package golden compares rendered output against checked-in golden files.
//
// Tests call Assert with the relative file name under the package's testdata
// directory. Running the tests with -update rewrites the files from current
// output instead of comparing.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var update = flag.Bool("update", false, "rewrite golden files with current output")

// Assert compares got against testdata/<name> and fails the test with a
// readable diff on mismatch.
func Assert(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name)
	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("update golden file %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden file %s (run with -update to create it): %v", path, err)
	}
	if string(want) == got {
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(want), got, false)
	t.Errorf("%s differs from golden file (want vs got):\n%s", name, dmp.DiffPrettyText(diffs))
}
