package vkeymap

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/vkeymap/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
	level    *slog.LevelVar
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vkeymap",
	Short: "Tablet on-screen keyboard keymap engine",
	Long: `vkeymap maps touches on a tablet on-screen keyboard to keys.
It can inspect and export layouts, type with a touchscreen through a virtual
keyboard device, and record taps to show them as a heat map.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bindFlags(cmd, args)

		return applyLogLevel()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// lvl is the level of the default logger, set from the log-level option.
func Execute(lvl *slog.LevelVar) {
	level = lvl

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vkeymap.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	addKeymapFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".vkeymap" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".vkeymap")
	}

	viper.SetEnvPrefix("vkeymap")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			log.Printf("Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}

const exampleConfig = `# vkeymap configuration
layout = "us qwerty"
language = "en"
width = 1024
height = 320
storage = "./taps.sqlite"
port = 9000
log-level = "info"
# strings = "./strings.yaml"
# layouts-dir = "./layouts"
# prefs = "./preferences.json"
# device = "/dev/input/event5"
`

func createExampleConfig() {
	configPath := "./.vkeymap.toml"

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		log.Printf("Error creating example config file: %s\n", err)

		return
	}

	log.Printf("Example config file created at %s\n", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}

		// Config keys are either the flag name or the flag name without hyphens.
		configName := f.Name
		if !viper.IsSet(configName) {
			configName = strings.ReplaceAll(f.Name, "-", "")
		}

		if !viper.IsSet(configName) {
			return
		}

		val := viper.Get(configName)

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			log.Printf("Error setting flag %s: %s\n", f.Name, err)
			panic(err)
		}

		slog.Debug("Flag set from config", "flag", f.Name, "value", val)
	})
}

func applyLogLevel() error {
	if err := logging.SetLevel(level, logLevel); err != nil {
		return fmt.Errorf("could not apply log-level: %w", err)
	}

	return nil
}
