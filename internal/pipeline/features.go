package pipeline

import (
	"gonum.org/v1/gonum/stat"

	"github.com/soundsift/soundsift/internal/dataset"
)

// defaultMood is used when no context records exist to average over.
const defaultMood = 0.5

// ExtractAudioFeatures returns an independent feature vector per track.
// Tracks with no features in the metadata get a minimal default vector so
// fusion always has something to work with.
func ExtractAudioFeatures(tracks []dataset.TrackMetadata) map[int64]dataset.FeatureVector {
	features := make(map[int64]dataset.FeatureVector, len(tracks))
	for _, t := range tracks {
		if len(t.AudioFeatures) == 0 {
			features[t.TrackID] = dataset.FeatureVector{"tempo": 120, "pitch": 1.0}
			continue
		}
		features[t.TrackID] = t.AudioFeatures.Clone()
	}
	return features
}

// FuseFeatures combines audio features with the aggregate contextual
// signal: the mean mood over all context records is injected as a
// mood_factor feature on every track, leaving original features untouched.
func FuseFeatures(audio map[int64]dataset.FeatureVector, context []dataset.ContextRecord) map[int64]dataset.FeatureVector {
	mood := defaultMood
	if len(context) > 0 {
		moods := make([]float64, len(context))
		for i, rec := range context {
			moods[i] = rec.Mood
		}
		mood = stat.Mean(moods, nil)
	}

	fused := make(map[int64]dataset.FeatureVector, len(audio))
	for trackID, features := range audio {
		v := features.Clone()
		v["mood_factor"] = mood
		fused[trackID] = v
	}
	return fused
}

// Projector maps fused feature vectors into a latent representation, one
// entry per input track. The default is placeholder arithmetic; a learned
// embedding can be substituted without touching graph or leaderboard code.
type Projector interface {
	Project(fused map[int64]dataset.FeatureVector) map[int64]dataset.FeatureVector
}

// DampingProjector scales every feature value by a fixed factor.
type DampingProjector struct {
	Factor float64
}

func (p DampingProjector) Project(fused map[int64]dataset.FeatureVector) map[int64]dataset.FeatureVector {
	latent := make(map[int64]dataset.FeatureVector, len(fused))
	for trackID, features := range fused {
		v := make(dataset.FeatureVector, len(features))
		for name, value := range features {
			v[name] = value * p.Factor
		}
		latent[trackID] = v
	}
	return latent
}

// DefaultProjector is the standard latent projection.
var DefaultProjector Projector = DampingProjector{Factor: 0.8}

// ExtractLatentFeatures projects fused vectors through p, defaulting to
// DefaultProjector when p is nil.
func ExtractLatentFeatures(fused map[int64]dataset.FeatureVector, p Projector) map[int64]dataset.FeatureVector {
	if p == nil {
		p = DefaultProjector
	}
	return p.Project(fused)
}
