package model

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/google-marketing-solutions/curvesmith/internal/apierror"
)

type eventSuite struct {
	suite.Suite
}

func TestEventSuite(t *testing.T) {
	suite.Run(t, new(eventSuite))
}

func (s *eventSuite) TestTitleFallback() {
	testCases := []struct {
		name  string
		title string
		exp   string
	}{
		{name: "set title", title: "Launch Day", exp: "Launch Day"},
		{name: "empty title", title: "", exp: UntitledEvent},
		{name: "blank title", title: "   ", exp: UntitledEvent},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			event, err := NewScheduledEvent(at(10, 0), at(12, 0), 20, tc.title)
			s.Require().NoError(err)
			s.Equal(tc.exp, event.Title())
		})
	}
}

func (s *eventSuite) TestNewScheduledEventInvalidRange() {
	_, err := NewScheduledEvent(at(12, 0), at(10, 0), 20, "reversed")
	s.EqualError(err, apierror.ErrStartNotBeforeEnd)
}

func (s *eventSuite) TestNewFlightNegativeGoal() {
	_, err := NewFlight(at(10, 0), at(12, 0), -1)
	s.EqualError(err, apierror.ErrValueMustBeNonNegative)
}

func (s *eventSuite) TestParseGoalType() {
	testCases := []struct {
		name   string
		input  string
		exp    GoalType
		expErr string
	}{
		{name: "total", input: "total", exp: GoalTypeTotal},
		{name: "day", input: "day", exp: GoalTypeDay},
		{name: "case insensitive", input: " DAY ", exp: GoalTypeDay},
		{name: "unknown", input: "weekly", expErr: apierror.ErrUnknownGoalType},
		{name: "empty", input: "", expErr: apierror.ErrUnknownGoalType},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := ParseGoalType(tc.input)
			if tc.expErr != "" {
				s.EqualError(err, tc.expErr)
				return
			}

			s.NoError(err)
			s.Equal(tc.exp, got)
		})
	}
}

func (s *eventSuite) TestGoalTypeString() {
	s.Equal("total", GoalTypeTotal.String())
	s.Equal("day", GoalTypeDay.String())
	s.Equal("unknown", GoalType(0).String())
}
