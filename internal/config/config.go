package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorewood/xmlifyme/internal/envfile"
	"github.com/gorewood/xmlifyme/internal/fault"
)

// Defaults for the executable-relative layout.
const (
	AppName          = "xmlifyme"
	InputDirName     = "data"
	InputFileName    = "input.json"
	OutputDirName    = "output"
	DefaultExtension = ".xml"
)

// Environment variables that override file and default settings.
const (
	EnvInput            = "XMLIFYME_INPUT"
	EnvOutput           = "XMLIFYME_OUTPUT"
	EnvExtension        = "XMLIFYME_EXTENSION"
	EnvStripBackslashes = "XMLIFYME_STRIP_BACKSLASHES"
)

// Config is the resolved run configuration. It is built once at startup
// and passed to the commands that need it.
type Config struct {
	InputPath        string
	OutputDir        string
	Extension        string
	StripBackslashes bool
	FailFast         bool
}

// Default returns the layout rooted at baseDir:
// <base>/data/input.json in, <base>/output out.
func Default(baseDir string) Config {
	return Config{
		InputPath: filepath.Join(baseDir, InputDirName, InputFileName),
		OutputDir: filepath.Join(baseDir, OutputDirName),
		Extension: DefaultExtension,
	}
}

// InputDir returns the directory containing the input file.
func (c Config) InputDir() string {
	return filepath.Dir(c.InputPath)
}

// Sources lists where Resolve looks for settings.
type Sources struct {
	// BaseDir anchors defaults and relative paths. Empty means ExecutableDir.
	BaseDir string
	// ConfigFile is an explicit config file. Empty means FindFile(Dir()).
	ConfigFile string
	// Getenv reads the environment. Nil means os.Getenv.
	Getenv func(string) string
}

// Resolve builds a Config from, in increasing precedence: defaults under
// BaseDir, the config file, .env then .env.local in BaseDir, and the
// process environment. Flags are applied by the caller afterwards.
func Resolve(src Sources) (Config, error) {
	base := src.BaseDir
	if base == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return Config{}, fault.New("config.resolve", fault.KindConfig, "", err)
		}
		base = dir
	}

	getenv := src.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Default(base)

	path := src.ConfigFile
	explicit := path != ""
	if !explicit {
		path = FindFile(dirFrom(getenv))
	}
	if path != "" {
		file, err := LoadFile(path, explicit)
		if err != nil {
			return Config{}, err
		}
		cfg = file.applyTo(cfg, base)
	}

	local, err := envfile.Read(filepath.Join(base, ".env.local"))
	if err != nil {
		return Config{}, fault.New("config.resolve", fault.KindConfig, "", err)
	}
	shared, err := envfile.Read(filepath.Join(base, ".env"))
	if err != nil {
		return Config{}, fault.New("config.resolve", fault.KindConfig, "", err)
	}

	return applyEnv(cfg, envfile.Chain(getenv, local, shared), base), nil
}

// applyEnv overlays XMLIFYME_* values onto cfg.
func applyEnv(cfg Config, lookup func(string) string, base string) Config {
	if v := lookup(EnvInput); v != "" {
		cfg.InputPath = resolvePath(base, v)
	}
	if v := lookup(EnvOutput); v != "" {
		cfg.OutputDir = resolvePath(base, v)
	}
	if v := lookup(EnvExtension); v != "" {
		cfg.Extension = v
	}
	if v := lookup(EnvStripBackslashes); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.StripBackslashes = b
		}
	}
	return cfg
}

// resolvePath makes p absolute relative to base unless it already is.
func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
