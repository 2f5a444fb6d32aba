package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/google-marketing-solutions/curvesmith/cmd/config"
	"github.com/google-marketing-solutions/curvesmith/internal/model"
	"github.com/google-marketing-solutions/curvesmith/internal/storage"
)

// MilliPercent converts a goal percentage into the integral
// thousandths-of-a-percent unit the serving side consumes, rounding half away
// from zero. Conversion happens only here, at the output boundary; the curve
// itself stays in float64.
func MilliPercent(goalPercent float64) int64 {
	return decimal.NewFromFloat(goalPercent).
		Mul(decimal.NewFromInt(1000)).
		Round(0).
		IntPart()
}

type Renderer struct {
	out io.Writer
	cfg *config.Render
}

func NewRenderer(out io.Writer, cfg *config.Render) *Renderer {
	return &Renderer{out: out, cfg: cfg}
}

// Render writes one row per segment in curve order:
// <start> <milli-percent> <description>
func (r *Renderer) Render(segments []model.CurveSegment) {
	if r.out == nil {
		return
	}

	for _, segment := range segments {
		_, _ = fmt.Fprintf(
			r.out,
			"%s %d %s\n",
			segment.Start().Format(r.cfg.TimeLayout),
			MilliPercent(segment.GoalPercent()),
			segment.Description(),
		)
	}
}

// Summary aggregates a generated curve by segment kind.
type Summary struct {
	ScheduledCount     int
	UnscheduledCount   int
	ScheduledPercent   float64
	UnscheduledPercent float64
}

func Summarize(segments []model.CurveSegment) Summary {
	counts := storage.NewInMemoryCounter[bool]()
	percents := storage.NewInMemoryCounter[bool]()

	for _, segment := range segments {
		counts.Add(segment.Scheduled(), 1)
		percents.Add(segment.Scheduled(), segment.GoalPercent())
	}

	return Summary{
		ScheduledCount:     int(counts.Get(true)),
		UnscheduledCount:   int(counts.Get(false)),
		ScheduledPercent:   percents.Get(true),
		UnscheduledPercent: percents.Get(false),
	}
}
