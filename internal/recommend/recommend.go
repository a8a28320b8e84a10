// Package recommend selects candidate tracks per user and generates the
// natural-language explanations shown alongside them. Selection is a
// pluggable strategy; both built-ins are placeholders for a real ranking
// model.
package recommend

import (
	"math/rand"
	"sort"

	"github.com/soundsift/soundsift/internal/dataset"
	"github.com/soundsift/soundsift/internal/graph"
)

// Recommendation is one user's selected track. Valid is false when no
// candidate was available; that user still gets an entry.
type Recommendation struct {
	TrackID int64
	Valid   bool
}

// Strategy picks a track per user from the candidate set.
type Strategy interface {
	Pick(userID int64, candidates []int64) (int64, bool)
}

// FirstTrack deterministically picks the lowest track id. This is the
// default strategy: it makes repeated runs over identical input
// reproducible.
type FirstTrack struct{}

func (FirstTrack) Pick(userID int64, candidates []int64) (int64, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[0], true
}

// RandomTrack picks uniformly at random from the candidate set.
type RandomTrack struct {
	Rng *rand.Rand
}

func (r RandomTrack) Pick(userID int64, candidates []int64) (int64, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[r.Rng.Intn(len(candidates))], true
}

// Recommend maps every user node in the graph to a recommendation drawn
// from the latent feature space. The returned map's keys are exactly the
// graph's user set; an empty candidate set yields invalid recommendations,
// never an error.
func Recommend(g *graph.Graph, latent map[int64]dataset.FeatureVector, strategy Strategy) map[int64]Recommendation {
	if strategy == nil {
		strategy = FirstTrack{}
	}

	candidates := make([]int64, 0, len(latent))
	for trackID := range latent {
		candidates = append(candidates, trackID)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	recs := make(map[int64]Recommendation, len(g.Users))
	for _, userID := range g.Users {
		trackID, ok := strategy.Pick(userID, candidates)
		recs[userID] = Recommendation{TrackID: trackID, Valid: ok}
	}
	return recs
}
