package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpFromGoldenFile(t *testing.T) {
	filename := SetUpFromGoldenFile(t, ".html")

	assert.Equal(t, "TestSetUpFromGoldenFile.html", filepath.Base(filename))
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, GoldenFile(t, ".html"), bytes)
}

func TestSetUpFromFileContent(t *testing.T) {
	filename := SetUpFromFileContent(t, "notes.md", "# Notes\n")
	assertFileContains(t, filename, "# Notes\n")
}

func TestGoldenFile(t *testing.T) {
	content := GoldenFile(t, ".md")
	assert.Equal(t, "# TestGoldenFile\n\nHi!\n", string(content))
}

func TestGoldenFileNamed(t *testing.T) {
	content := GoldenFileNamed(t, "TestGoldenFileNamedWithAnotherName.md")
	assert.Equal(t, "# TestGoldenFileNamedWithAnotherName\n\nHello!\n", string(content))
}

/* Test Assertions */

func assertFileContains(t *testing.T, filename string, expected string) {
	actual, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, expected, string(actual))
}
