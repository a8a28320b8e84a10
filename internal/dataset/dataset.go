// Package dataset defines the data model for the interaction pipeline and
// implements ingestion: track metadata loading, synthetic event generation,
// and the interaction log sink.
package dataset

import "time"

// Action is a user action on a track.
type Action string

const (
	ActionPlay        Action = "play"
	ActionSkip        Action = "skip"
	ActionLike        Action = "like"
	ActionPlaylistAdd Action = "playlist_add"
)

// Actions lists every known action, in weight-table order.
var Actions = []Action{ActionPlay, ActionSkip, ActionLike, ActionPlaylistAdd}

// UnknownArtist is the placeholder label used whenever an artist name is
// missing. Downstream grouping keys on artist name, so missing values are
// backfilled rather than left empty.
const UnknownArtist = "Unknown Artist"

// InteractionEvent is a single user action on a track. Immutable once
// ingested.
type InteractionEvent struct {
	UserID    int64
	TrackID   int64
	Action    Action
	Timestamp time.Time
}

// ContextRecord holds contextual metadata around the time of an interaction.
// Matched to events by nearest timestamp.
type ContextRecord struct {
	UserID    int64
	Timestamp time.Time
	Mood      float64 // in [0, 1]
	Device    string
	Location  string
}

// FeatureVector maps a named audio or derived feature to its value.
type FeatureVector map[string]float64

// Clone returns an independent copy of the vector.
func (v FeatureVector) Clone() FeatureVector {
	out := make(FeatureVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// TrackMetadata describes one track. Loaded once per pipeline run and
// read-only afterward. ArtistName is never empty after loading.
type TrackMetadata struct {
	TrackID       int64
	TrackName     string
	ArtistName    string
	AudioFeatures FeatureVector
}

// RawData is the aligned output of ingestion.
type RawData struct {
	Interactions []InteractionEvent
	Tracks       []TrackMetadata
	Context      []ContextRecord
}

// ProcessedInteraction is an InteractionEvent joined with its nearest
// context record and track metadata, plus a computed session id.
type ProcessedInteraction struct {
	InteractionEvent

	// Context fields. HasContext is false when no context record matched
	// within the join tolerance; the interaction is kept regardless.
	HasContext bool
	Mood       float64
	Device     string
	Location   string

	ArtistName string
	TrackName  string

	// SessionID counts session boundaries per user, starting at 0.
	SessionID int
}
