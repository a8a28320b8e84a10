// Package graph builds the tri-partite interaction graph of users, tracks,
// and artists, and aggregates it into the artist leaderboard.
package graph

import (
	"sort"

	"github.com/soundsift/soundsift/internal/dataset"
)

// Edge is a weighted user→track interaction.
type Edge struct {
	UserID  int64
	TrackID int64
	Weight  float64
}

// Graph is the interaction graph for one pipeline run. It is built once and
// never mutated; all consumers treat it as a read-only snapshot.
type Graph struct {
	Users   []int64
	Tracks  []int64
	Artists []string

	// Edges carry raw action weights in processed-row order. WeightedEdges
	// is the canonical edge set after the adjustment pass, in the same
	// order.
	Edges         []Edge
	WeightedEdges []Edge

	// TrackToArtist is built from track metadata, so it covers all known
	// tracks, including those without interactions.
	TrackToArtist map[int64]string
}

// ActionWeight is the fixed edge weight table. Unknown actions get the play
// weight rather than an error.
func ActionWeight(action dataset.Action) float64 {
	switch action {
	case dataset.ActionPlay:
		return 1.0
	case dataset.ActionSkip:
		return 0.5
	case dataset.ActionLike:
		return 1.5
	case dataset.ActionPlaylistAdd:
		return 1.2
	default:
		return 1.0
	}
}

// AdjustFunc re-weights raw edges into the canonical edge set. It is the
// seam for plugging in a learned re-weighting model.
type AdjustFunc func([]Edge) []Edge

// UniformAdjust scales every edge weight by a fixed factor.
func UniformAdjust(factor float64) AdjustFunc {
	return func(edges []Edge) []Edge {
		adjusted := make([]Edge, len(edges))
		for i, e := range edges {
			e.Weight *= factor
			adjusted[i] = e
		}
		return adjusted
	}
}

// DefaultAdjust is the standard adjustment pass.
var DefaultAdjust = UniformAdjust(1.2)

// Build constructs the graph from processed interactions and track metadata.
// A nil adjust falls back to DefaultAdjust.
func Build(processed []dataset.ProcessedInteraction, tracks []dataset.TrackMetadata, adjust AdjustFunc) *Graph {
	if adjust == nil {
		adjust = DefaultAdjust
	}

	users := make(map[int64]bool)
	trackSet := make(map[int64]bool)
	artists := make(map[string]bool)
	edges := make([]Edge, 0, len(processed))

	for _, row := range processed {
		users[row.UserID] = true
		trackSet[row.TrackID] = true
		artists[row.ArtistName] = true
		edges = append(edges, Edge{
			UserID:  row.UserID,
			TrackID: row.TrackID,
			Weight:  ActionWeight(row.Action),
		})
	}

	trackToArtist := make(map[int64]string, len(tracks))
	for _, t := range tracks {
		trackToArtist[t.TrackID] = t.ArtistName
	}

	return &Graph{
		Users:         sortedInt64s(users),
		Tracks:        sortedInt64s(trackSet),
		Artists:       sortedStrings(artists),
		Edges:         edges,
		WeightedEdges: adjust(edges),
		TrackToArtist: trackToArtist,
	}
}

func sortedInt64s(set map[int64]bool) []int64 {
	out := make([]int64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
