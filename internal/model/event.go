package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google-marketing-solutions/curvesmith/internal/apierror"
)

// UntitledEvent is the display label for events whose title is blank.
// Applied at read time only; the stored title stays as supplied.
const UntitledEvent = "Untitled"

// WrappedScheduledEvent carries either a parsed event or the error that
// stopped parsing, for delivery over a channel.
type WrappedScheduledEvent struct {
	Event *ScheduledEvent
	Err   error
}

// ScheduledEvent is a caller-defined sub-interval of a flight demanding an
// explicit share of the goal.
//
// The meaning of GoalPercent depends on the goal type: a share of the whole
// flight goal (total), or a share of the even daily rate (day).
type ScheduledEvent struct {
	TimeRange

	GoalPercent float64

	title string
}

func NewScheduledEvent(start, end time.Time, goalPercent float64, title string) (*ScheduledEvent, error) {
	tr, err := NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	return &ScheduledEvent{
		TimeRange:   tr,
		GoalPercent: goalPercent,
		title:       title,
	}, nil
}

// Title returns the display label, falling back to UntitledEvent when the
// stored title is blank.
func (e *ScheduledEvent) Title() string {
	if strings.TrimSpace(e.title) == "" {
		return UntitledEvent
	}

	return e.title
}

type GoalType int

const (
	// GoalTypeTotal interprets event percentages as shares of the whole
	// flight goal.
	GoalTypeTotal GoalType = 1

	// GoalTypeDay interprets event percentages as shares of the even daily
	// rate, so a single event may claim more than its proportional share.
	GoalTypeDay GoalType = 2
)

func (g GoalType) String() string {
	switch g {
	case GoalTypeDay:
		return "day"
	case GoalTypeTotal:
		return "total"
	}

	return "unknown"
}

func ParseGoalType(s string) (GoalType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "total":
		return GoalTypeTotal, nil
	case "day":
		return GoalTypeDay, nil
	}

	return 0, errors.New(apierror.ErrUnknownGoalType)
}
