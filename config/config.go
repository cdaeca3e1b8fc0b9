// Package config owns the viper-based configuration engine: defaults, environment bindings and the toml file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anisan-cli/eprange/constant"
	"github.com/anisan-cli/eprange/filesystem"
	"github.com/anisan-cli/eprange/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads eprange.toml if present.
func Setup() error {
	viper.SetConfigName(constant.Eprange)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Eprange)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// ErrUnknownKey is returned for a key that has no registered default.
var ErrUnknownKey = errors.New("unknown config key")

// File returns the path of eprange.toml.
func File() string {
	return filepath.Join(where.Config(), constant.Eprange+".toml")
}

// Parse converts command line values into the type of the key's default value.
func Parse(k string, raw []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("%s: %w", k, ErrUnknownKey)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: value is required", k)
	}

	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer value %q", k, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean value %q", k, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", k, field.typeName())
	}
}

// Save writes the current settings to File, creating it when missing.
func Save() error {
	err := viper.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return viper.SafeWriteConfig()
	}
	return err
}
