package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"replkit/internal/adapters/console"
	"replkit/internal/core/port"
	"replkit/internal/core/service"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "replkit",
	Short: "Interactive console demos built on the replkit dispatch engine",
	Long: `replkit dispatches lines of console input across chains of handlers:
exact commands, regular expressions with named captures and argument
grammars with typed flags. Each subcommand starts one demo console.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.RenderError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./replkit.toml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("replkit")
		viper.SetConfigType("toml")
	}

	viper.SetDefault("log_level", "warn")
	if home, err := os.UserHomeDir(); err == nil {
		viper.SetDefault("history_file", filepath.Join(home, ".replkit_history"))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Err(err).Msg("could not read config file")
		}
	}

	var logLevel zerolog.Level
	switch viper.GetString("log_level") {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	default:
		logLevel = zerolog.WarnLevel
	}

	zerolog.SetGlobalLevel(logLevel)
}

func runConsole(root port.CommandContext) error {
	reader := console.NewLiner(viper.GetString("history_file"))
	return service.NewCommander(root, reader, os.Stdout).Run()
}
