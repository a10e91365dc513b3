package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/the-clozewriter/pkg/clock"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	if dbSingleton != nil {
		dbSingleton.Close()
		dbSingleton = nil
	}
	configOnce.Reset()
	dbOnce.Reset()
	loggerOnce.Reset()
}

/* Fixtures */

// SetUpFromTempDir populates a temp directory containing a valid .nt directory.
func SetUpFromTempDir(t *testing.T) string {
	dirname := t.TempDir()
	configureDir(t, dirname, DefaultConfig)
	return dirname
}

// SetUpFromTempDirWithConfig populates a temp directory using the given .nt/config content.
func SetUpFromTempDirWithConfig(t *testing.T, config string) string {
	dirname := t.TempDir()
	configureDir(t, dirname, config)
	return dirname
}

func configureDir(t *testing.T, dirname string, config string) {
	ntDir := filepath.Join(dirname, ".nt")
	if err := os.Mkdir(ntDir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(ntDir, "config"), []byte(config), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	// Force the application to consider the temporary directory as the home
	t.Setenv("NT_HOME", dirname)
	t.Cleanup(Reset)

	// Force debug level in tests to diagnose more easily
	CurrentLogger().SetVerboseLevel(VerboseDebug)
	CurrentLogger().Debugf("✨ Set up directory %q", ntDir)
}

/* Reproducible Tests */

// FreezeNow wraps the clock API to register the cleanup function at the end of the test.
func FreezeNow(t *testing.T) time.Time {
	now := clock.Freeze().Now()
	t.Cleanup(clock.Unfreeze)
	return now
}

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) time.Time {
	now := clock.FreezeAt(point).Now()
	t.Cleanup(clock.Unfreeze)
	return now
}
