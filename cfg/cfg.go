// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cfg implements the application configuration
package cfg

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrNoConfigFile is returned by Load when gopen.json is not found; defaults are still set
var ErrNoConfigFile = errors.New("config file not found")

// FileName is the name of the configuration file without extension
const FileName = "gopen"

// HullSettings holds the default vehicle
type HullSettings struct {
	Length float64 `json:"length" mapstructure:"length"`
	Front  float64 `json:"front" mapstructure:"front"`
	Ammo   bool    `json:"ammo" mapstructure:"ammo"`
	Budget float64 `json:"barrelMass" mapstructure:"barrelMass"`
	Preset string  `json:"preset" mapstructure:"preset"`
}

// SetDefaults sets the default values of all keys
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logConsole", true)
	viper.SetDefault("demo", "all")

	viper.SetDefault("materials.file", "")
	viper.SetDefault("materials.hvlMeV", 1.0)

	viper.SetDefault("sim.dir", "data")
	viper.SetDefault("sim.file", "")

	viper.SetDefault("hull.length", 7.9)
	viper.SetDefault("hull.front", 0.2)
	viper.SetDefault("hull.ammo", true)
	viper.SetDefault("hull.barrelMass", 0.0)

	viper.SetDefault("gun.preset", "m829")
}

// Load reads configuration from the JSON file in configDir and sets default values.
// A missing file gives an error wrapping ErrNoConfigFile.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var nf viper.ConfigFileNotFoundError
		if errors.As(err, &nf) {
			return fmt.Errorf("%w in %q", ErrNoConfigFile, configDir)
		}
		return fmt.Errorf("error reading config file: %v", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Hull returns the default vehicle settings
func Hull() HullSettings {
	return HullSettings{
		Length: viper.GetFloat64("hull.length"),
		Front:  viper.GetFloat64("hull.front"),
		Ammo:   viper.GetBool("hull.ammo"),
		Budget: viper.GetFloat64("hull.barrelMass"),
		Preset: viper.GetString("gun.preset"),
	}
}
