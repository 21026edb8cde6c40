package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cb-cli"
)

// Config is the merged file/env/flag configuration of the CLI.
type Config struct {
	BaseURL     string        `mapstructure:"base-url"`
	Platform    string        `mapstructure:"platform"`
	SessionFile string        `mapstructure:"session-file"`
	HistoryDB   string        `mapstructure:"history-db"`
	TokenFile   string        `mapstructure:"token-file"`
	Template    string        `mapstructure:"template"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cb-cli talks to the CareerBooster backend: build and render CVs, analyze uploaded ones, browse course suggestions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// a local .env is developer convenience, absence is fine
	_ = godotenv.Load()

	if err := viper.BindEnv("base-url", "CB_BASE_URL"); err != nil {
		log.Fatalf("binding CB_BASE_URL environment variable: %v", err)
	}
	if err := viper.BindEnv("platform", "CB_PLATFORM"); err != nil {
		log.Fatalf("binding CB_PLATFORM environment variable: %v", err)
	}
	if err := viper.BindEnv("token-file", "CB_TOKEN_FILE"); err != nil {
		log.Fatalf("binding CB_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cb-cli.yaml in current directory)")
	rootCmd.PersistentFlags().String("base-url", "", "backend base URL (default depends on platform)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// the CLI works without a config file, but a present-and-broken one
	// must not be silently ignored
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
