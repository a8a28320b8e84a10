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
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soundsift/soundsift/internal/store"
)

var historyNumber int

var historyCmd = &cobra.Command{
	Use:   "history [from] [to (optional)]",
	Short: "Shows per-artist interaction counts from the database",
	Long:  `Uses the specified date or date range. Date strings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printHistory(viper.GetString("database"), historyNumber, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyNumber, "number", "n", 10, "number of results to return")
}

func printHistory(dbPath string, numToReturn int, args []string) error {
	analysis, err := historyAnalysis(dbPath, numToReturn, args)
	if err != nil {
		return err
	}
	fmt.Println(analysis)
	return nil
}

func historyAnalysis(dbPath string, numToReturn int, args []string) (Analysis, error) {
	var analysis Analysis

	start, end, err := parseDateRangeFromArgs(args)
	if err != nil {
		return analysis, err
	}

	if _, err := os.Stat(dbPath); err != nil {
		return analysis, fmt.Errorf("database doesn't exist - run ingest first")
	}

	db, err := store.New(dbPath)
	if err != nil {
		return analysis, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	counts, err := db.TopArtists(start, end)
	if err != nil {
		return analysis, fmt.Errorf("history: %w", err)
	}

	var total int64
	analysis.results = [][]string{{"Artist", "Interactions"}}
	for i, c := range counts {
		total += c.Count
		if numToReturn == 0 || i < numToReturn {
			analysis.results = append(analysis.results, []string{c.Artist, strconv.FormatInt(c.Count, 10)})
		}
	}

	const dateFormat = "2006-01-02"
	analysis.summary = fmt.Sprintf("Found %d artists and %d interactions from %s to %s\n",
		len(counts), total, start.Format(dateFormat), end.Format(dateFormat))
	return analysis, nil
}

// defaultHistoryRange is the previous full month, matching what the email
// digest uses when no dates are given.
func defaultHistoryRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, end
}
