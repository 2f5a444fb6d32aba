package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/google-marketing-solutions/curvesmith/cmd/config"
	"github.com/google-marketing-solutions/curvesmith/internal/curve"
	"github.com/google-marketing-solutions/curvesmith/internal/export"
	"github.com/google-marketing-solutions/curvesmith/internal/logging"
	"github.com/google-marketing-solutions/curvesmith/internal/model"
	"github.com/google-marketing-solutions/curvesmith/internal/parser"
)

var generateCmd = &cobra.Command{
	Use:   "generate <template-file>",
	Short: "Generate a delivery curve from a flight template file",
	Long: "Read a template file (goal type, impression goal, flight range, scheduled events), " +
		"generate the curve segments and print one row per segment: start, milli-percent, description.",
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.Setup(verbose)

	parserConfig, err := config.NewParserConfig()
	if err != nil {
		return fmt.Errorf("checkout configuration: %w", err)
	}

	renderConfig, err := config.NewRenderConfig()
	if err != nil {
		return fmt.Errorf("checkout configuration: %w", err)
	}

	f, err := openFile(args[0])
	if err != nil {
		return err
	}

	defer func() {
		if e := f.Close(); e != nil {
			logger.Error().Err(e).Msg("failed to close template file")
		}
	}()

	fp := parser.NewFileParser(bufio.NewScanner(f), parserConfig)
	flight, goalType, err := fp.ReadFlightData()
	if err != nil {
		return err
	}

	events, err := collectEvents(fp.ReadEvents())
	if err != nil {
		return err
	}

	segments, err := curve.GenerateCurveSegments(flight, events, goalType)
	if err != nil {
		return err
	}

	for _, segment := range segments {
		logger.Debug().Msg(segment.String(renderConfig.TimeLayout))
	}

	export.NewRenderer(cmd.OutOrStdout(), renderConfig).Render(segments)

	summary := export.Summarize(segments)
	logger.Info().
		Str("goal_type", goalType.String()).
		Float64("impression_goal", flight.ImpressionGoal).
		Int("events", len(events)).
		Int("scheduled_segments", summary.ScheduledCount).
		Int("unscheduled_segments", summary.UnscheduledCount).
		Float64("scheduled_percent", summary.ScheduledPercent).
		Float64("unscheduled_percent", summary.UnscheduledPercent).
		Msg("curve generated")

	return nil
}

func openFile(filename string) (*os.File, error) {
	f, err := os.Open(filepath.Clean(filename))
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("file does not exist: %s", filename)
	case errors.Is(err, os.ErrPermission):
		return nil, fmt.Errorf("not enough permissions to open file: %s", filename)
	default:
		return nil, fmt.Errorf("could not open file: %s", err)
	}

	return f, nil
}

// collectEvents drains the parser channel into the ordered slice the
// generator expects, aborting on the first parse failure.
func collectEvents(eventsChan <-chan model.WrappedScheduledEvent) ([]*model.ScheduledEvent, error) {
	var events []*model.ScheduledEvent
	for wrapped := range eventsChan {
		if wrapped.Err != nil {
			return nil, wrapped.Err
		}

		events = append(events, wrapped.Event)
	}

	return events, nil
}
