package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetUpFromGoldenFile creates a temp file based on the golden file of the current test.
// The file must exist in directory testdata/ and be named after the test with the given extension.
func SetUpFromGoldenFile(t *testing.T, ext string) string {
	return SetUpFromGoldenFileNamed(t, t.Name()+ext)
}

// SetUpFromGoldenFileNamed creates a temp file based on the given golden file name.
func SetUpFromGoldenFileNamed(t *testing.T, filename string) string {
	return SetUpFromFileContent(t, filepath.Base(filename), string(GoldenFileNamed(t, filename)))
}

// SetUpFromFileContent creates a temp file based on the given file content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()

	fileOut := filepath.Join(dir, filename)
	err := os.WriteFile(fileOut, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	return fileOut
}

// GoldenFile reads the content of the golden file of the current test.
func GoldenFile(t *testing.T, ext string) []byte {
	return GoldenFileNamed(t, t.Name()+ext)
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}
