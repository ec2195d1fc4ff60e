package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// TrackConfig is the [Track] section of a tracking run's config file.
type TrackConfig struct {
	// Required
	Geometry string
	X, Y, Z  float64
	U, V, W  float64

	// Optional
	MaxSteps int
	Verbose  bool
}

type trackFile struct {
	Track TrackConfig
}

// ReadTrackFile reads and validates a [Track] config file.
func ReadTrackFile(path string) (*TrackConfig, error) {
	cfg := &trackFile{}
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Track.CheckInit(); err != nil {
		return nil, err
	}
	return &cfg.Track, nil
}

func (tc *TrackConfig) CheckInit() error {
	if tc.Geometry == "" {
		return fmt.Errorf(
			"Need to specify a Geometry deck in the [Track] section.",
		)
	}
	if tc.U == 0 && tc.V == 0 && tc.W == 0 {
		return fmt.Errorf(
			"Need to specify a nonzero direction (U, V, W) in the " +
				"[Track] section.",
		)
	}
	if tc.MaxSteps < 0 {
		return fmt.Errorf(
			"MaxSteps must not be negative, but is %d.", tc.MaxSteps,
		)
	}
	return nil
}
