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
	"io"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/soundsift/soundsift/internal/graph"
	"github.com/soundsift/soundsift/internal/pipeline"
	"github.com/soundsift/soundsift/internal/recommend"
)

var (
	runInteractions int
	runStrategy     string
	runTopArtists   int
	runAsYaml       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the full pipeline and prints the dashboard data",
	Long: `Ingests (or synthesizes) interaction data, builds the weighted
interaction graph, and prints the artist leaderboard plus per-user
recommendations and explanations.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runPipeline(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&runInteractions, "interactions", "n", 100, "Number of synthetic interactions to generate")
	runCmd.Flags().StringVar(&runStrategy, "strategy", "first", "Recommendation strategy: first or random")
	runCmd.Flags().IntVar(&runTopArtists, "top", 0, "Limit leaderboard rows (0 shows all)")
	runCmd.Flags().BoolVar(&runAsYaml, "yaml", false, "Emit the full report as YAML instead of tables")
}

func runPipeline(out io.Writer) error {
	strategy, err := strategyFromName(runStrategy, viper.GetInt64("seed"))
	if err != nil {
		return err
	}

	result, err := pipeline.Run(pipeline.Config{
		MetadataPath: viper.GetString("metadata"),
		Interactions: runInteractions,
		LogPath:      viper.GetString("interaction-log"),
		Seed:         viper.GetInt64("seed"),
		Strategy:     strategy,
	})
	if err != nil {
		return err
	}
	printWarnings(result.Warnings)

	if runAsYaml {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(newRunReport(result))
	}

	fmt.Fprint(out, leaderboardAnalysis(result.Leaderboard, runTopArtists))
	fmt.Fprint(out, recommendationAnalysis(result))
	return nil
}

func strategyFromName(name string, seed int64) (recommend.Strategy, error) {
	switch name {
	case "first":
		return recommend.FirstTrack{}, nil
	case "random":
		return recommend.RandomTrack{Rng: rand.New(rand.NewSource(seed))}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want first or random)", name)
	}
}

func leaderboardAnalysis(entries []graph.LeaderboardEntry, limit int) Analysis {
	a := Analysis{results: [][]string{{"Artist", "Score"}}}
	shown := 0
	for _, e := range entries {
		if limit > 0 && shown >= limit {
			break
		}
		a.results = append(a.results, []string{e.Artist, strconv.FormatFloat(e.Score, 'f', 2, 64)})
		shown++
	}
	a.summary = fmt.Sprintf("Artist leaderboard: %d artists\n", len(entries))
	return a
}

func recommendationAnalysis(result *pipeline.Result) Analysis {
	a := Analysis{results: [][]string{{"User", "Track", "Explanation"}}}
	for _, userID := range result.Graph.Users {
		rec := result.Recommendations[userID]
		track := "-"
		if rec.Valid {
			track = strconv.FormatInt(rec.TrackID, 10)
		}
		a.results = append(a.results, []string{
			strconv.FormatInt(userID, 10),
			track,
			result.Explanations[userID],
		})
	}
	a.summary = fmt.Sprintf("Generated recommendations for %d users\n", len(result.Recommendations))
	return a
}

type runReport struct {
	Warnings        []string                 `yaml:"warnings,omitempty"`
	Leaderboard     []graph.LeaderboardEntry `yaml:"leaderboard"`
	Recommendations []userRecommendation     `yaml:"recommendations"`
}

type userRecommendation struct {
	UserID      int64  `yaml:"user_id"`
	TrackID     *int64 `yaml:"track_id"`
	Explanation string `yaml:"explanation,omitempty"`
}

func newRunReport(result *pipeline.Result) runReport {
	report := runReport{
		Warnings:    result.Warnings,
		Leaderboard: result.Leaderboard,
	}

	users := make([]int64, 0, len(result.Recommendations))
	for userID := range result.Recommendations {
		users = append(users, userID)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	for _, userID := range users {
		rec := result.Recommendations[userID]
		ur := userRecommendation{UserID: userID, Explanation: result.Explanations[userID]}
		if rec.Valid {
			trackID := rec.TrackID
			ur.TrackID = &trackID
		}
		report.Recommendations = append(report.Recommendations, ur)
	}
	return report
}
