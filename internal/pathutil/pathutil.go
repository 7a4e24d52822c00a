// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar selects an alternate set of files, so that a development build does
// not share state with the installed one.
const EnvVar = "CADENCE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	statusFilePath string
	logFilePath    string
	soundsDir      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			appDir:         "cadence",
			configFileName: "config.yml",
			statusFileName: "status.json",
			logFileName:    "cadence.log",
		}

		p.applyEnvironmentOverrides(os.Getenv(EnvVar))

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// SoundsDir is the default location of user supplied sound files.
func SoundsDir() string {
	return Must().soundsDir
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("cadence_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file: %w", err)
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)
	p.soundsDir = filepath.Join(dataDir, "sounds")

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
