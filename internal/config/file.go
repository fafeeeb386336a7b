package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/xmlifyme/internal/fault"
)

// configFileNames are probed in order by FindFile.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

// File is the on-disk configuration. Unset fields leave the defaults alone;
// relative paths are taken relative to the base directory (the executable
// directory unless --dir or Sources.BaseDir names another).
//
//	# config.yaml
//	input: data/input.json
//	output: /srv/xml
//	extension: .xml
//	strip_backslashes: false
//	fail_fast: false
type File struct {
	Input            string `yaml:"input"             toml:"input"`
	Output           string `yaml:"output"            toml:"output"`
	Extension        string `yaml:"extension"         toml:"extension"`
	StripBackslashes *bool  `yaml:"strip_backslashes" toml:"strip_backslashes"`
	FailFast         *bool  `yaml:"fail_fast"         toml:"fail_fast"`
}

// FindFile returns the first config file present in dir, or "".
func FindFile(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadFile decodes a YAML or TOML config file, chosen by extension.
// A missing file yields an empty File unless required is set.
func LoadFile(path string, required bool) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return File{}, nil
		}
		return File{}, fault.New("config.load_file", fault.KindConfig, path, err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		err = fmt.Errorf("unsupported config file type %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return File{}, fault.New("config.load_file", fault.KindConfig, path, err)
	}
	return file, nil
}

// applyTo overlays the set fields of f onto cfg.
func (f File) applyTo(cfg Config, base string) Config {
	if f.Input != "" {
		cfg.InputPath = resolvePath(base, f.Input)
	}
	if f.Output != "" {
		cfg.OutputDir = resolvePath(base, f.Output)
	}
	if f.Extension != "" {
		cfg.Extension = f.Extension
	}
	if f.StripBackslashes != nil {
		cfg.StripBackslashes = *f.StripBackslashes
	}
	if f.FailFast != nil {
		cfg.FailFast = *f.FailFast
	}
	return cfg
}

// DefaultFile returns a File spelling out the default settings, for
// writing a starter config.
func DefaultFile() File {
	off := false
	return File{
		Input:            filepath.Join(InputDirName, InputFileName),
		Output:           OutputDirName,
		Extension:        DefaultExtension,
		StripBackslashes: &off,
		FailFast:         &off,
	}
}

// SaveFile encodes f as YAML or TOML, chosen by the extension of path,
// creating parent directories as needed. An existing file is replaced.
func SaveFile(path string, f File) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(f)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(f)
		data = buf.Bytes()
	default:
		err = fmt.Errorf("unsupported config file type %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return fault.New("config.save_file", fault.KindConfig, path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fault.New("config.save_file", fault.KindIO, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fault.New("config.save_file", fault.KindIO, path, err)
	}
	return nil
}
