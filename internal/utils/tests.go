package util

import (
	"path/filepath"
	"testing"
)

func CreateTempFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "clockdb-test.dat")
}
