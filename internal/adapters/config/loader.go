// Package config loads the runtime settings from pkghash.yaml, .env files and the environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader using viper.
type Loader struct{}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration visible from cwd.
// The nearest pkghash.yaml at or above cwd is used, and PKGHASH_* variables override it.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "path", cwd)
	}

	if _, skip := os.LookupEnv(domain.SkipDotEnvVar); !skip {
		if err := loadDotEnv(dir); err != nil {
			return nil, err
		}
	}

	v := viper.New()

	defaults := domain.DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("tracer", defaults.Tracer)
	v.SetDefault("signature", defaults.Signature)
	v.SetDefault("report.enabled", defaults.Report.Enabled)
	v.SetDefault("report.dir", defaults.Report.Dir)

	v.SetConfigName(domain.ConfigFileName)
	v.SetConfigType("yaml")
	for _, d := range ancestors(dir) {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
		}
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigLoadFailed.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "file", v.ConfigFileUsed())
	}
	return &cfg, nil
}

// loadDotEnv exports the variables of the nearest .env file that are not already set.
func loadDotEnv(dir string) error {
	path := findUp(dir, domain.DotEnvFileName)
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "file", path)
	}

	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigLoadFailed.Error()), "variable", name)
		}
	}
	return nil
}

// ancestors returns dir followed by each of its parents up to the file system root.
func ancestors(dir string) []string {
	dirs := []string{dir}
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dirs
		}
		dirs = append(dirs, parent)
		dir = parent
	}
}

func findUp(dir, name string) string {
	for _, d := range ancestors(dir) {
		path := filepath.Join(d, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
