package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/the-clozewriter/pkg/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for path, content := range files {
		abspath := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(abspath), os.ModePerm))
		require.NoError(t, os.WriteFile(abspath, []byte(content), 0644))
	}
	return dir
}

func TestReadConfigFromDirectory(t *testing.T) {

	t.Run("Config present", func(t *testing.T) {
		dir := populate(t, map[string]string{
			".nt/config": `
[cloze]
ratio = 0.3

[markdown]
engine = "goldmark"
`,
		})

		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, dir, config.RootDirectory)
		assert.Equal(t, 0.3, config.Ratio())
		assert.Equal(t, 0.18, config.ConfigFile.Cloze.FallbackRatio) // default
		assert.Equal(t, markdown.EngineGoldmark, config.Engine())
		assert.Equal(t, "mynotes", config.DefaultTab())
		assert.Equal(t, filepath.Join(dir, ".nt", "database.db"), config.DatabasePath())
		assert.Equal(t, filepath.Join(dir, ".nt", "worksheets"), config.WorksheetDir())
	})

	t.Run("Config missing", func(t *testing.T) {
		dir := populate(t, map[string]string{
			".nt/.gitignore": DefaultGitIgnore,
		})

		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 0.15, config.Ratio())
		assert.Equal(t, markdown.EngineGomarkdown, config.Engine())
	})

	t.Run("Parent directory", func(t *testing.T) {
		dir := populate(t, map[string]string{
			".nt/config":           DefaultConfig,
			"os/scheduling/notes": "",
		})

		config, err := ReadConfigFromDirectory(filepath.Join(dir, "os", "scheduling"))
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, dir, config.RootDirectory)
	})

	t.Run("No repository", func(t *testing.T) {
		dir := t.TempDir()

		config, err := ReadConfigFromDirectory(dir)
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("Unknown field", func(t *testing.T) {
		dir := populate(t, map[string]string{
			".nt/config": `
[cloze]
percent = 15
`,
		})

		_, err := ReadConfigFromDirectory(dir)
		assert.Error(t, err)
	})
}

func TestInitConfigFromDirectory(t *testing.T) {
	dir := t.TempDir()

	config, err := InitConfigFromDirectory(dir)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, dir, config.RootDirectory)
	assert.NoError(t, config.Check())
	assert.FileExists(t, filepath.Join(dir, ".nt", "config"))
	assert.FileExists(t, filepath.Join(dir, ".nt", ".gitignore"))

	// Run a second time
	_, err = InitConfigFromDirectory(dir)
	assert.ErrorContains(t, err, "current configuration detected")
}

func TestConfigCheck(t *testing.T) {
	var tests = []struct {
		name   string // name
		config string // .nt/config content
		valid  bool   // expected result
	}{
		{
			name:   "Default",
			config: DefaultConfig,
			valid:  true,
		},
		{
			name:   "Empty",
			config: "",
			valid:  true,
		},
		{
			name: "Full ratio",
			config: `
[cloze]
ratio = 1.0`,
			valid: true,
		},
		{
			name: "Zero ratio",
			config: `
[cloze]
ratio = 0.0`,
			valid: false,
		},
		{
			name: "Ratio greater than 1",
			config: `
[cloze]
ratio = 15.0`,
			valid: false,
		},
		{
			name: "Negative fallback ratio",
			config: `
[cloze]
fallback-ratio = -0.2`,
			valid: false,
		},
		{
			name: "Unknown engine",
			config: `
[markdown]
engine = "blackfriday"`,
			valid: false,
		},
		{
			name: "Blank tab",
			config: `
[notes]
default-tab = " "`,
			valid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile, err := parseConfigFile(tt.config)
			require.NoError(t, err)
			config := &Config{ConfigFile: *configFile}
			err = config.Check()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCurrentConfig(t *testing.T) {
	dir := SetUpFromTempDirWithConfig(t, `
[cloze]
ratio = 0.5
fallback-ratio = 0.6
`)

	config := CurrentConfig()
	assert.Equal(t, dir, config.RootDirectory)
	assert.Equal(t, 0.5, config.Ratio())
	assert.Same(t, config, CurrentConfig())

	session := NewSession("", config.SessionOptions()...)
	assert.Equal(t, 0.5, session.ratio)
	assert.Equal(t, 0.6, session.picker.FallbackRatio)
}
