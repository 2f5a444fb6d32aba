package export

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/google-marketing-solutions/curvesmith/cmd/config"
	"github.com/google-marketing-solutions/curvesmith/internal/model"
)

type exportSuite struct {
	suite.Suite
	cfg *config.Render
}

func newExportSuite() *exportSuite {
	cfg, err := config.NewRenderConfig()
	if err != nil {
		log.Fatal(err)
	}

	return &exportSuite{
		cfg: cfg,
	}
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, newExportSuite())
}

func at(hour int) time.Time {
	return time.Date(2024, time.March, 27, hour, 0, 0, 0, time.UTC)
}

func (s *exportSuite) scheduledSegment(startHour, endHour int, percent float64, title string) model.CurveSegment {
	event, err := model.NewScheduledEvent(at(startHour), at(endHour), percent, title)
	s.Require().NoError(err)

	return model.NewScheduledSegment(event, percent)
}

func (s *exportSuite) resolvedFiller(startHour, endHour int, description string, ctx *model.GoalContext) model.CurveSegment {
	span, err := model.NewTimeRange(at(startHour), at(endHour))
	s.Require().NoError(err)

	segment := model.NewUnscheduledSegment(description, span)
	segment.CalculateGoal(ctx)
	return segment
}

func (s *exportSuite) TestMilliPercent() {
	testCases := []struct {
		name    string
		percent float64
		exp     int64
	}{
		{name: "whole percent", percent: 20, exp: 20000},
		{name: "repeating fraction", percent: 53.333333333333336, exp: 53333},
		{name: "rounds up", percent: 26.666666666666668, exp: 26667},
		{name: "half rounds away from zero", percent: 0.0005, exp: 1},
		{name: "zero", percent: 0, exp: 0},
		{name: "full goal", percent: 100, exp: 100000},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.exp, MilliPercent(tc.percent))
		})
	}
}

func (s *exportSuite) TestRender() {
	ctx := &model.GoalContext{
		GoalType:           model.GoalTypeTotal,
		ImpressionGoal:     100,
		UnscheduledHours:   9,
		UnscheduledPercent: 80,
	}

	segments := []model.CurveSegment{
		s.resolvedFiller(0, 6, "Pre-Event [A]", ctx),
		s.scheduledSegment(6, 9, 20, "A"),
		s.resolvedFiller(9, 12, "Post-Events", ctx),
	}

	out := &bytes.Buffer{}
	NewRenderer(out, s.cfg).Render(segments)

	exp := "2024-03-27T00:00 53333 Pre-Event [A]\n" +
		"2024-03-27T06:00 20000 A\n" +
		"2024-03-27T09:00 26667 Post-Events\n"
	s.Equal(exp, out.String())
}

func (s *exportSuite) TestRenderNilWriter() {
	s.NotPanics(func() {
		NewRenderer(nil, s.cfg).Render([]model.CurveSegment{
			s.scheduledSegment(6, 9, 20, "A"),
		})
	})
}

func (s *exportSuite) TestSummarize() {
	ctx := &model.GoalContext{
		GoalType:           model.GoalTypeTotal,
		ImpressionGoal:     100,
		UnscheduledHours:   9,
		UnscheduledPercent: 80,
	}

	segments := []model.CurveSegment{
		s.resolvedFiller(0, 6, "Pre-Event [A]", ctx),
		s.scheduledSegment(6, 9, 20, "A"),
		s.resolvedFiller(9, 12, "Post-Events", ctx),
	}

	summary := Summarize(segments)
	s.Equal(1, summary.ScheduledCount)
	s.Equal(2, summary.UnscheduledCount)
	s.InDelta(20, summary.ScheduledPercent, 1e-9)
	s.InDelta(80, summary.UnscheduledPercent, 1e-9)
}

func (s *exportSuite) TestSummarizeEmpty() {
	summary := Summarize(nil)
	s.Equal(0, summary.ScheduledCount)
	s.Equal(0, summary.UnscheduledCount)
}
