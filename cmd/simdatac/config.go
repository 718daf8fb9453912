package main

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bearlytools/simdata/internal/conversions"
	"github.com/bearlytools/simdata/internal/idl"
)

// Config holds the settings of simdatac.
type Config struct {
	// Out is the directory generated files are written to. It defaults to the directory of
	// the schema.
	Out string `toml:"out" yaml:"out"`
	// Package overrides the package name declared by the schema.
	Package string `toml:"package" yaml:"package"`
	// Verbose turns on step logging.
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// defaultConfigs are tried in order when no config file is named.
var defaultConfigs = []string{"simdatac.toml", "simdatac.yaml"}

// loadConfig reads the config at path. An empty path tries defaultConfigs in dir and
// returns a zero Config if none exist.
func loadConfig(fsys fs.ReadFileFS, dir, path string) (Config, error) {
	if path != "" {
		return readConfig(fsys, path)
	}
	for _, p := range defaultConfigs {
		c, err := readConfig(fsys, filepath.Join(dir, p))
		switch {
		case err == nil:
			return c, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		}
		return Config{}, err
	}
	return Config{}, nil
}

func readConfig(fsys fs.ReadFileFS, path string) (Config, error) {
	b, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var c Config
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(conversions.ByteSlice2String(b), &c); err != nil {
			return Config{}, pkgerrors.Wrapf(err, "config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, pkgerrors.Wrapf(err, "config %s", path)
		}
	default:
		return Config{}, pkgerrors.Errorf("config %s: must end in .toml or .yaml", path)
	}

	if c.Package != "" {
		if err := idl.ValidPackage(c.Package); err != nil {
			return Config{}, pkgerrors.Wrapf(err, "config %s: package", path)
		}
	}
	return c, nil
}
