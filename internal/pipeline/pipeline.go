// Package pipeline implements the batch data-fusion pipeline: preprocessing
// (temporal joins and session segmentation), feature fusion, and the
// orchestration that threads ingestion, graph construction, recommendation,
// and the leaderboard into one immutable result.
package pipeline

import (
	"fmt"
	"math/rand"

	"github.com/soundsift/soundsift/internal/dataset"
	"github.com/soundsift/soundsift/internal/graph"
	"github.com/soundsift/soundsift/internal/recommend"
)

// Error wraps a stage failure. The pipeline surfaces at most one of these
// per run.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config controls one pipeline run. The strategy seams default to the
// standard placeholder implementations when nil.
type Config struct {
	MetadataPath string
	Interactions int
	LogPath      string
	Seed         int64

	Projector Projector
	Adjust    graph.AdjustFunc
	Strategy  recommend.Strategy
}

// Result is an immutable snapshot of one run. Callers may hold references
// across subsequent runs; nothing here is updated in place.
type Result struct {
	Raw             *dataset.RawData
	Processed       []dataset.ProcessedInteraction
	AudioFeatures   map[int64]dataset.FeatureVector
	Fused           map[int64]dataset.FeatureVector
	Latent          map[int64]dataset.FeatureVector
	Graph           *graph.Graph
	Recommendations map[int64]recommend.Recommendation
	Explanations    map[int64]string
	Leaderboard     []graph.LeaderboardEntry
	Warnings        []string
}

// Run executes the full pipeline: ingest, preprocess, fuse, build the
// graph, recommend, explain, and aggregate the leaderboard. Each stage
// fully consumes its input before the next starts; a failure propagates as
// a single *Error.
func Run(cfg Config) (*Result, error) {
	res := &Result{}

	raw, warnings, err := dataset.Ingest(dataset.IngestConfig{
		MetadataPath: cfg.MetadataPath,
		Interactions: cfg.Interactions,
		LogPath:      cfg.LogPath,
		Seed:         cfg.Seed,
	})
	if err != nil {
		return nil, &Error{Stage: "ingest", Err: err}
	}
	res.Raw = raw
	res.Warnings = append(res.Warnings, warnings...)

	processed, warnings, err := Preprocess(raw)
	if err != nil {
		return nil, &Error{Stage: "preprocess", Err: err}
	}
	res.Processed = processed
	res.Warnings = append(res.Warnings, warnings...)

	res.AudioFeatures = ExtractAudioFeatures(raw.Tracks)
	res.Fused = FuseFeatures(res.AudioFeatures, raw.Context)
	res.Latent = ExtractLatentFeatures(res.Fused, cfg.Projector)

	res.Graph = graph.Build(processed, raw.Tracks, cfg.Adjust)

	strategy := cfg.Strategy
	if strategy == nil {
		strategy = recommend.FirstTrack{}
	}
	res.Recommendations = recommend.Recommend(res.Graph, res.Latent, strategy)
	res.Explanations = recommend.Explain(res.Recommendations, res.Graph, rand.New(rand.NewSource(cfg.Seed)))
	res.Leaderboard = res.Graph.Leaderboard()

	return res, nil
}
