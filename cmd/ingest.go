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
	"github.com/spf13/viper"

	"github.com/soundsift/soundsift/internal/dataset"
	"github.com/soundsift/soundsift/internal/store"
)

var ingestInteractions int

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Synthesizes interaction data and records it",
	Long: `Loads track metadata, synthesizes interaction and context events,
writes the flat-file interaction log, and records interactions in the
local SQLite database for later offline analysis.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := ingestData(viper.GetString("database"), ingestInteractions)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().IntVarP(&ingestInteractions, "interactions", "n", 100, "Number of synthetic interactions to generate")
}

func ingestData(dbPath string, n int) error {
	raw, warnings, err := dataset.Ingest(dataset.IngestConfig{
		MetadataPath: viper.GetString("metadata"),
		Interactions: n,
		LogPath:      viper.GetString("interaction-log"),
		Seed:         viper.GetInt64("seed"),
	})
	if err != nil {
		return fmt.Errorf("ingesting: %w", err)
	}
	printWarnings(warnings)

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.AddTracks(raw.Tracks); err != nil {
		return fmt.Errorf("recording tracks: %w", err)
	}
	if err := db.AddInteractions(raw.Interactions); err != nil {
		return fmt.Errorf("recording interactions: %w", err)
	}

	fmt.Printf("Ingested %d interactions over %d tracks\n", len(raw.Interactions), len(raw.Tracks))
	return nil
}
