/*
Copyright 2020 Google LLC

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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string
var metadataPath string
var databasePath string
var interactionLogPath string
var randomSeed int64

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "soundsift",
	Short: "Builds music interaction graphs, leaderboards, and recommendations",
	Long: `Ingests user-track interaction events, context, and track audio
features; fuses them into a weighted interaction graph; and derives
per-user recommendations and an artist leaderboard for dashboard use.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.soundsift.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&metadataPath, "metadata", "m", "./spotify_data.csv", "Path to the track metadata CSV")
	viper.BindPFlag("metadata", rootCmd.PersistentFlags().Lookup("metadata"))

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./soundsift.db", "Path to the SQLite database")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().StringVar(
		&interactionLogPath, "interaction-log", "./interaction_log.csv", "Path to the flat-file interaction log")
	viper.BindPFlag("interaction-log", rootCmd.PersistentFlags().Lookup("interaction-log"))

	rootCmd.PersistentFlags().Int64Var(
		&randomSeed, "seed", 0, "Seed for synthetic data generation (0 is a valid, fixed seed)")
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".soundsift" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".soundsift")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
