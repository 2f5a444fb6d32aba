package model

import (
	"errors"
	"time"

	"github.com/google-marketing-solutions/curvesmith/internal/apierror"
)

// Flight is the overall period and total impression goal to be partitioned
// into a delivery curve. Built once per generation call, never mutated.
type Flight struct {
	TimeRange

	// ImpressionGoal is the total number of impressions to deliver across
	// the flight. Must not be negative.
	ImpressionGoal float64
}

func NewFlight(start, end time.Time, impressionGoal float64) (*Flight, error) {
	tr, err := NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	if impressionGoal < 0 {
		return nil, errors.New(apierror.ErrValueMustBeNonNegative)
	}

	return &Flight{TimeRange: tr, ImpressionGoal: impressionGoal}, nil
}
