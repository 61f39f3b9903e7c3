/*
Copyright © 2022 Ci4Rail GmbH <engineering@ci4rail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alglobo/exgen/pkg/fixture"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultConfigFile = ".exgen.yaml"
	envPrefix         = "EXGEN"
)

type globalConfiguration struct {
	Dir      string `mapstructure:"dir"`       // output directory for generated fixtures
	LogLevel string `mapstructure:"log-level"` // zerolog level name
}

type rootOptions struct {
	viper     *viper.Viper
	cfgFile   string
	globalCfg globalConfiguration
}

// NewRootCmd creates the exgen command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "exgen <suffix> [count]",
		Short: "Generates payment fixture files for alglobo",
		Long: `Writes <dir>/example-<suffix>.csv with count payment rows (default 100).
Each row is "<id>,<id>.00,<id>.00" with ids counting up from 1.
The output directory must exist. Use "--" before a negative count.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.initConfig,
		RunE:              o.run,
	}

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", defaultConfigFile, "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.Flags().String("dir", fixture.DefaultDir, "output directory, must exist")

	// lookups of flags defined above, cannot fail
	_ = o.viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = o.viper.BindPFlag("dir", rootCmd.Flags().Lookup("dir"))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &fixture.InvalidArgumentError{Arg: "flags", Reason: err.Error()}
	})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newVerifyCmd())
	return rootCmd
}

// Execute runs the root command and exits with 2 on invalid arguments and 1 on any other error.
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.999Z07:00"})

	if err := NewRootCmd().Execute(); err != nil {
		var invalidArg *fixture.InvalidArgumentError
		if errors.As(err, &invalidArg) {
			log.Error().Msgf("%s", err)
			os.Exit(2)
		}
		log.Fatal().Msgf("%s", err)
	}
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := fixture.ParseArgs(args)
	if err != nil {
		return err
	}
	if o.globalCfg.Dir != "" {
		cfg.Dir = o.globalCfg.Dir
	}
	_, err = fixture.Generate(cfg)
	return err
}

// initConfig reads in config file and ENV variables if set.
// A missing default config file is fine, an explicitly given one must exist.
func (o *rootOptions) initConfig(cmd *cobra.Command, args []string) error {
	v := o.viper
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cmd.Flags().Changed("config") {
		v.SetConfigFile(o.cfgFile)
	} else {
		v.SetConfigName(o.cfgFile)
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&o.globalCfg); err != nil {
		return fmt.Errorf("unmarshal global config: %w", err)
	}

	level, err := zerolog.ParseLevel(o.globalCfg.LogLevel)
	if err != nil {
		return &fixture.InvalidArgumentError{Arg: "log-level", Value: o.globalCfg.LogLevel, Reason: "unknown log level"}
	}
	zerolog.SetGlobalLevel(level)

	if f := v.ConfigFileUsed(); f != "" {
		log.Debug().Msgf("using config file %s", f)
	}
	return nil
}
