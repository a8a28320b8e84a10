package dataset

import (
	"math/rand"
	"time"
)

// Fallback id ranges used when the metadata source yields no tracks.
const (
	fallbackTrackCount = 100
	syntheticUserCount = 10
)

var devices = []string{"mobile", "desktop"}
var locations = []string{"CityA", "CityB", "CityC"}

// Generator produces synthetic interaction and context streams. All
// randomness flows through a single seeded source so runs are reproducible.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator returns a generator seeded for reproducible output, anchored
// at now.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Interactions generates n synthetic events over trackIDs, with timestamps
// drawn uniformly from the trailing 24-hour window. An empty trackIDs slice
// falls back to the fixed range [1, 100].
func (g *Generator) Interactions(n int, trackIDs []int64) []InteractionEvent {
	if len(trackIDs) == 0 {
		trackIDs = make([]int64, fallbackTrackCount)
		for i := range trackIDs {
			trackIDs[i] = int64(i + 1)
		}
	}

	events := make([]InteractionEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, InteractionEvent{
			UserID:    int64(g.rng.Intn(syntheticUserCount) + 1),
			TrackID:   trackIDs[g.rng.Intn(len(trackIDs))],
			Action:    Actions[g.rng.Intn(len(Actions))],
			Timestamp: g.timestamp(),
		})
	}
	return events
}

// Context generates n context records on the same user and time ranges as
// Interactions.
func (g *Generator) Context(n int) []ContextRecord {
	records := make([]ContextRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, ContextRecord{
			UserID:    int64(g.rng.Intn(syntheticUserCount) + 1),
			Timestamp: g.timestamp(),
			Mood:      float64(g.rng.Intn(101)) / 100,
			Device:    devices[g.rng.Intn(len(devices))],
			Location:  locations[g.rng.Intn(len(locations))],
		})
	}
	return records
}

func (g *Generator) timestamp() time.Time {
	return g.now.Add(-time.Duration(g.rng.Intn(86400)) * time.Second)
}
