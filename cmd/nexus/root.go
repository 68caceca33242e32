package main

import (
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jayadityagandham/Scholar-Nexus/log"
)

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger

	// configuration
	config Configuration
)

type Configuration struct {
	HTTP struct {
		Addr string `toml:"addr"`
	} `toml:"http"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Store string `toml:"store"`
	} `toml:"bleve"`
	Redis struct {
		Addr    string `toml:"addr"`
		Channel string `toml:"channel"`
	} `toml:"redis"`
}

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "nexus",
	Short: "Academic resources and book reservations for your campus",
	Long:  "Academic resources and book reservations for your campus",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		cfgData, err := os.ReadFile(configFile)
		if err != nil {
			logger.Fatal("error reading configuration:", err)
		}

		if err := toml.Unmarshal(cfgData, &config); err != nil {
			logger.Fatal("error unmarshalling configuration:", err)
		}
	},
}
