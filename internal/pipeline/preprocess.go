package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/soundsift/soundsift/internal/dataset"
)

const (
	// contextTolerance bounds the nearest-timestamp context match.
	contextTolerance = time.Minute

	// sessionGap is the inter-event gap that starts a new session.
	sessionGap = 300 * time.Second
)

// Preprocess joins interactions with their nearest context record and track
// metadata, then computes per-user session ids. Every valid interaction
// yields exactly one row: missing context leaves the context fields absent,
// and a missing artist after the metadata join is backfilled with the
// placeholder label and reported as a warning.
func Preprocess(raw *dataset.RawData) ([]dataset.ProcessedInteraction, []string, error) {
	if raw == nil {
		return nil, nil, fmt.Errorf("preprocess: nil input")
	}
	var warnings []string

	interactions := validInteractions(raw.Interactions)
	contexts := contextsByUser(validContexts(raw.Context))
	tracks := tracksByID(validTracks(raw.Tracks))

	rows := make([]dataset.ProcessedInteraction, 0, len(interactions))
	missingArtists := 0
	for _, ev := range interactions {
		row := dataset.ProcessedInteraction{InteractionEvent: ev}

		if ctx, ok := nearestContext(contexts[ev.UserID], ev.Timestamp); ok {
			row.HasContext = true
			row.Mood = ctx.Mood
			row.Device = ctx.Device
			row.Location = ctx.Location
		}

		if t, ok := tracks[ev.TrackID]; ok && t.ArtistName != "" {
			row.ArtistName = t.ArtistName
			row.TrackName = t.TrackName
		} else {
			row.ArtistName = dataset.UnknownArtist
			row.TrackName = fmt.Sprintf("Track %d", ev.TrackID)
			missingArtists++
		}

		rows = append(rows, row)
	}
	if missingArtists > 0 {
		warnings = append(warnings, fmt.Sprintf("%d interactions had no artist after the metadata join; filled with %q", missingArtists, dataset.UnknownArtist))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].UserID != rows[j].UserID {
			return rows[i].UserID < rows[j].UserID
		}
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})
	assignSessions(rows)

	return rows, warnings, nil
}

// assignSessions expects rows sorted by (user, timestamp). A gap greater
// than sessionGap starts a new session; ids count boundaries per user from
// 0.
func assignSessions(rows []dataset.ProcessedInteraction) {
	var prevUser int64
	var prevTime time.Time
	session := 0

	for i := range rows {
		if i == 0 || rows[i].UserID != prevUser {
			session = 0
		} else if rows[i].Timestamp.Sub(prevTime) > sessionGap {
			session++
		}
		rows[i].SessionID = session
		prevUser = rows[i].UserID
		prevTime = rows[i].Timestamp
	}
}

func validInteractions(events []dataset.InteractionEvent) []dataset.InteractionEvent {
	out := make([]dataset.InteractionEvent, 0, len(events))
	for _, ev := range events {
		if ev.UserID == 0 || ev.TrackID == 0 || ev.Action == "" || ev.Timestamp.IsZero() {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func validContexts(records []dataset.ContextRecord) []dataset.ContextRecord {
	out := make([]dataset.ContextRecord, 0, len(records))
	for _, rec := range records {
		if rec.UserID == 0 || rec.Timestamp.IsZero() {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func validTracks(tracks []dataset.TrackMetadata) []dataset.TrackMetadata {
	out := make([]dataset.TrackMetadata, 0, len(tracks))
	for _, t := range tracks {
		if t.TrackID == 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}

func contextsByUser(records []dataset.ContextRecord) map[int64][]dataset.ContextRecord {
	byUser := make(map[int64][]dataset.ContextRecord)
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}
	for _, recs := range byUser {
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Timestamp.Before(recs[j].Timestamp)
		})
	}
	return byUser
}

func tracksByID(tracks []dataset.TrackMetadata) map[int64]dataset.TrackMetadata {
	byID := make(map[int64]dataset.TrackMetadata, len(tracks))
	for _, t := range tracks {
		if _, ok := byID[t.TrackID]; !ok {
			byID[t.TrackID] = t
		}
	}
	return byID
}

// nearestContext finds the record closest in time to ts among the user's
// records (sorted ascending), within the tolerance window.
func nearestContext(records []dataset.ContextRecord, ts time.Time) (dataset.ContextRecord, bool) {
	if len(records) == 0 {
		return dataset.ContextRecord{}, false
	}

	i := sort.Search(len(records), func(i int) bool {
		return !records[i].Timestamp.Before(ts)
	})

	best := -1
	var bestGap time.Duration
	for _, candidate := range []int{i - 1, i} {
		if candidate < 0 || candidate >= len(records) {
			continue
		}
		gap := ts.Sub(records[candidate].Timestamp)
		if gap < 0 {
			gap = -gap
		}
		if best == -1 || gap < bestGap {
			best = candidate
			bestGap = gap
		}
	}
	if best == -1 || bestGap > contextTolerance {
		return dataset.ContextRecord{}, false
	}
	return records[best], true
}
