package graph

import (
	"sort"

	"github.com/soundsift/soundsift/internal/dataset"
)

// LeaderboardEntry is one artist's aggregate score.
type LeaderboardEntry struct {
	Artist string  `yaml:"artist"`
	Score  float64 `yaml:"score"`
}

// Leaderboard sums weighted edge weights per artist and returns entries
// sorted descending by score. Edges are accumulated in their original order
// and ties keep first-encountered order, so repeated calls over the same
// graph produce identical output.
func (g *Graph) Leaderboard() []LeaderboardEntry {
	scores := make(map[string]float64)
	var order []string

	for _, e := range g.WeightedEdges {
		artist, ok := g.TrackToArtist[e.TrackID]
		if !ok {
			artist = dataset.UnknownArtist
		}
		if _, seen := scores[artist]; !seen {
			order = append(order, artist)
		}
		scores[artist] += e.Weight
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, artist := range order {
		entries = append(entries, LeaderboardEntry{Artist: artist, Score: scores[artist]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
