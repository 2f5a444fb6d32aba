package model

import (
	"errors"
	"time"

	"github.com/google-marketing-solutions/curvesmith/internal/apierror"
)

// TimeRange is a half-open-by-convention interval between two instants.
//
// Start is always strictly before End; the zero time.Time is treated as the
// invalid-instant sentinel and rejected by the constructor.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if start.IsZero() || end.IsZero() {
		return TimeRange{}, errors.New(apierror.ErrInvalidTimeValue)
	}

	if !start.Before(end) {
		return TimeRange{}, errors.New(apierror.ErrStartNotBeforeEnd)
	}

	return TimeRange{Start: start, End: end}, nil
}

// Contains reports whether other lies entirely within tr, bounds inclusive.
func (tr TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(tr.Start) && !other.End.After(tr.End)
}

// Overlaps reports whether the two ranges share any open interior.
// Touching endpoints do not count, so back-to-back ranges never overlap.
func (tr TimeRange) Overlaps(other TimeRange) bool {
	return tr.Start.Before(other.End) && tr.End.After(other.Start)
}

func (tr TimeRange) Duration() time.Duration {
	return tr.End.Sub(tr.Start)
}

// Hours returns the range duration in fractional hours.
//
// All goal allocation math is hour-based, matching the granularity the
// serving side paces at.
func (tr TimeRange) Hours() float64 {
	return tr.Duration().Hours()
}
