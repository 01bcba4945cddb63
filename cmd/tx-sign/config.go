// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix      = "TXSIGN"
	configName     = "tx-sign"
	signingKeyName = "signing_key"

	formatJSON   = "json"
	formatLegacy = "legacy"
)

// Config holds the settings read from the config file, environment and flags
type Config struct {
	LogLevel   string `mapstructure:"log_level"`
	Format     string `mapstructure:"format"`
	SelfVerify bool   `mapstructure:"self_verify"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("format", formatJSON)
	v.SetDefault("self_verify", false)
}

// loadConfig reads tx-sign.yaml from the working directory, or the explicit
// config file if one is given. Environment variables use the TXSIGN_ prefix
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	// The signing key is only ever read from the environment
	if err := v.BindEnv(signingKeyName); err != nil {
		return nil, err
	}
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	switch cfg.Format {
	case formatJSON, formatLegacy:
	default:
		return nil, fmt.Errorf("unknown output format: %q", cfg.Format)
	}
	return cfg, nil
}
