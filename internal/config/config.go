// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// Supported gorm engines.
const (
	EngineMySQL  = "mysql"
	EngineSQLite = "sqlite"
)

// DefaultExportDir is used when the export section leaves the target
// directory empty.
const DefaultExportDir = "./export"

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv("GOFEDS_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill the defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineSQLite
	}

	switch c.DB.GormEngine {
	case EngineMySQL:
		if c.DB.Name == "" {
			return errors.Wrap(ErrEmptyDBName, invalidErrMessage)
		}
	case EngineSQLite:
		if c.DB.Path == "" {
			return errors.Wrap(ErrEmptyDBPath, invalidErrMessage)
		}
	default:
		return errors.Wrap(ErrUnknownDBEngine, invalidErrMessage)
	}

	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}

	return nil
}
