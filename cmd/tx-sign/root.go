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
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cliContext is shared by all subcommands of a single root command
type cliContext struct {
	v          *viper.Viper
	configFile string
	cfg        *Config
	logger     *slog.Logger
}

func newRootCommand() *cobra.Command {
	cc := &cliContext{
		v: viper.New(),
	}
	rootCmd := &cobra.Command{
		Use:          "tx-sign",
		Short:        "Sign Cardano transactions with a payment key",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cc.v, cc.configFile)
			if err != nil {
				return err
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			cc.cfg = cfg
			cc.logger = slog.New(
				slog.NewTextHandler(
					cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: level},
				),
			)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(
		&cc.configFile,
		"config",
		"",
		"config file (defaults to ./tx-sign.yaml if present)",
	)
	rootCmd.PersistentFlags().String(
		"log-level",
		"info",
		"log level (debug, info, warn, error)",
	)
	_ = cc.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		newSignCommand(cc),
		newVerifyCommand(cc),
		newInspectCommand(cc),
		newMetadataCommand(cc),
	)
	return rootCmd
}
