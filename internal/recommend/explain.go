package recommend

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/soundsift/soundsift/internal/dataset"
	"github.com/soundsift/soundsift/internal/graph"
)

// Descriptor enumerations for explanation copy. These exist purely for UI
// variety and are not computed from data.
var (
	moodDescriptors  = []string{"upbeat", "mellow", "energetic", "laid-back"}
	genreDescriptors = []string{"indie", "electronic", "acoustic", "pop"}
	timesOfDay       = []string{"morning", "afternoon", "evening", "late-night"}
)

var explanationTemplates = []string{
	"Because you've been into %[1]s lately, this %[2]s %[3]s pick fits your %[4]s listening.",
	"Fans of %[1]s often enjoy this one; its %[2]s %[3]s feel suits a %[4]s session.",
	"Your recent plays of %[1]s suggest you'd like this %[2]s %[3]s track for the %[4]s.",
}

const similarArtistSuffix = " Listeners who like %s also play %s."

// Explain generates one explanation string per valid recommendation. Users
// without a valid recommendation get no entry. All randomness flows through
// rng, so output is reproducible for a fixed seed.
func Explain(recs map[int64]Recommendation, g *graph.Graph, rng *rand.Rand) map[int64]string {
	users := make([]int64, 0, len(recs))
	for userID := range recs {
		users = append(users, userID)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	explanations := make(map[int64]string)
	for _, userID := range users {
		rec := recs[userID]
		if !rec.Valid {
			continue
		}

		artist, ok := g.TrackToArtist[rec.TrackID]
		if !ok {
			artist = dataset.UnknownArtist
		}

		text := fmt.Sprintf(explanationTemplates[rng.Intn(len(explanationTemplates))],
			artist,
			moodDescriptors[rng.Intn(len(moodDescriptors))],
			genreDescriptors[rng.Intn(len(genreDescriptors))],
			timesOfDay[rng.Intn(len(timesOfDay))],
		)
		if similar, ok := similarArtist(g.Artists, artist, rng); ok {
			text += fmt.Sprintf(similarArtistSuffix, artist, similar)
		}
		explanations[userID] = text
	}
	return explanations
}

// similarArtist picks a random artist from the node set different from the
// primary one.
func similarArtist(artists []string, primary string, rng *rand.Rand) (string, bool) {
	others := make([]string, 0, len(artists))
	for _, a := range artists {
		if a != primary && a != dataset.UnknownArtist {
			others = append(others, a)
		}
	}
	if len(others) == 0 {
		return "", false
	}
	return others[rng.Intn(len(others))], true
}
