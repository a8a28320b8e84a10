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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/soundsift/soundsift/internal/dataset"
	"github.com/soundsift/soundsift/internal/store"
)

var (
	simulateCount int
	simulateRate  float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Streams synthetic interactions into the database",
	Long: `Simulates real-time ingestion: emits synthetic interaction events
into the SQLite database one at a time, rate-limited, so downstream
consumers can be exercised against a live-looking stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := simulateStream(viper.GetString("database"), simulateCount, simulateRate)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVarP(&simulateCount, "count", "c", 50, "Number of events to emit")
	simulateCmd.Flags().Float64VarP(&simulateRate, "rate", "r", 5, "Events per second")
}

func simulateStream(dbPath string, count int, eventsPerSecond float64) error {
	if eventsPerSecond <= 0 {
		return fmt.Errorf("rate must be positive, got %v", eventsPerSecond)
	}

	tracks, warnings, err := dataset.LoadTrackMetadata(viper.GetString("metadata"))
	if err != nil {
		return fmt.Errorf("loading metadata: %w", err)
	}
	printWarnings(warnings)

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.AddTracks(tracks); err != nil {
		return fmt.Errorf("recording tracks: %w", err)
	}

	trackIDs := make([]int64, 0, len(tracks))
	for _, t := range tracks {
		trackIDs = append(trackIDs, t.TrackID)
	}

	gen := dataset.NewGenerator(viper.GetInt64("seed"), time.Now())
	limiter := rate.NewLimiter(rate.Limit(eventsPerSecond), 1)
	ctx := context.Background()

	for i := 0; i < count; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for rate limiter: %w", err)
		}
		events := gen.Interactions(1, trackIDs)
		if err := db.AddInteractions(events); err != nil {
			return fmt.Errorf("recording event %d: %w", i+1, err)
		}
	}

	fmt.Printf("Streamed %d events at %.1f/s\n", count, eventsPerSecond)
	return nil
}
