package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google-marketing-solutions/curvesmith/internal/apierror"
	"github.com/google-marketing-solutions/curvesmith/internal/model"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "template.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write template: %s", err)
	}

	return path
}

func execute(args ...string) (string, error) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	path := writeTemplate(t, strings.Join([]string{
		"total",
		"100",
		"2024-03-27T00:00 2024-03-27T12:00",
		"2024-03-27T06:00 2024-03-27T09:00 20 A",
	}, "\n"))

	out, err := execute("generate", path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	exp := "2024-03-27T00:00 53333 Pre-Event [A]\n" +
		"2024-03-27T06:00 20000 A\n" +
		"2024-03-27T09:00 26667 Post-Events\n"
	if out != exp {
		t.Errorf("expected output %q, got %q", exp, out)
	}
}

func TestGenerateCommandCurveError(t *testing.T) {
	path := writeTemplate(t, strings.Join([]string{
		"total",
		"100",
		"2024-03-27T00:00 2024-03-27T12:00",
		"2024-03-27T06:00 2024-03-27T09:00 10 second",
		"2024-03-27T01:00 2024-03-27T03:00 10 first",
	}, "\n"))

	_, err := execute("generate", path)
	if err == nil {
		t.Fatal("expected an error for out-of-order events")
	}

	if err.Error() != apierror.ErrEventsOutOfOrder {
		t.Errorf("expected error %q, got %q", apierror.ErrEventsOutOfOrder, err)
	}
}

func TestGenerateCommandMissingFile(t *testing.T) {
	_, err := execute("generate", filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestCollectEvents(t *testing.T) {
	event, err := model.NewScheduledEvent(
		mustTime(t, "2024-03-27T06:00"),
		mustTime(t, "2024-03-27T09:00"),
		20,
		"A",
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	t.Run("collects in order", func(t *testing.T) {
		eventsChan := make(chan model.WrappedScheduledEvent, 2)
		eventsChan <- model.WrappedScheduledEvent{Event: event}
		eventsChan <- model.WrappedScheduledEvent{Event: event}
		close(eventsChan)

		events, err := collectEvents(eventsChan)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if len(events) != 2 {
			t.Errorf("expected 2 events, got %d", len(events))
		}
	})

	t.Run("aborts on parse failure", func(t *testing.T) {
		parseErr := errors.New("broken row")

		eventsChan := make(chan model.WrappedScheduledEvent, 2)
		eventsChan <- model.WrappedScheduledEvent{Event: event}
		eventsChan <- model.WrappedScheduledEvent{Err: parseErr}
		close(eventsChan)

		events, err := collectEvents(eventsChan)
		if !errors.Is(err, parseErr) {
			t.Errorf("expected error %q, got %q", parseErr, err)
		}

		if events != nil {
			t.Errorf("expected no partial result, got %d events", len(events))
		}
	})
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		t.Fatalf("failed to parse time: %s", err)
	}

	return parsed
}
