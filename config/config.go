// Package config loads server settings from an INI file, looked up in
// the usual home-directory locations when no explicit path is given.
package config

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

var possibleConfigPaths = []string{
	".config/byteserve/config.ini",
	".byteserve.ini",
}

type Config struct {
	Addr    string
	Port    string
	Root    string
	Verbose bool
}

func Default() Config {
	return Config{
		Addr: "0.0.0.0",
		Port: "8011",
		Root: ".",
	}
}

// Load reads configuration from path. When path is empty, the home
// directory candidates are tried in order and a missing file just
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			return cfg, err
		}
		if found == "" {
			return cfg, nil
		}
		path = found
	}

	f, err := ini.Load(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "unable to load config file %q", path)
	}

	server := f.Section("server")
	if k := server.Key("addr"); k.String() != "" {
		cfg.Addr = k.String()
	}
	if k := server.Key("port"); k.String() != "" {
		cfg.Port = k.String()
	}
	if k := server.Key("root"); k.String() != "" {
		cfg.Root = k.String()
	}
	if server.HasKey("verbose") {
		v, err := server.Key("verbose").Bool()
		if err != nil {
			return cfg, errors.Wrap(err, "'verbose' is not a boolean")
		}
		cfg.Verbose = v
	}
	return cfg, nil
}

func findConfigFile() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "unable to find homedir")
	}
	for _, p := range possibleConfigPaths {
		filename := homeDir + "/" + p
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
	}
	return "", nil
}
