package parser

import (
	"bufio"
	"strconv"
	"strings"
	"time"

	"github.com/google-marketing-solutions/curvesmith/cmd/config"
	"github.com/google-marketing-solutions/curvesmith/internal/apierror"
	"github.com/google-marketing-solutions/curvesmith/internal/model"
)

type Parser interface {

	// ReadFlightData reads the template header needed for further parsing:
	// the goal type, the impression goal and the flight range.
	ReadFlightData() (*model.Flight, model.GoalType, error)

	// ReadEvents reads scheduled events from the file in a separate goroutine.
	// It returns a channel of events.
	// The channel is closed when all events are read, or when an error occurs.
	ReadEvents() <-chan model.WrappedScheduledEvent
}

type FileParser struct {
	scanner   *bufio.Scanner
	cfg       *config.Parser
	rowNumber int
}

func NewFileParser(scanner *bufio.Scanner, cfg *config.Parser) *FileParser {
	return &FileParser{
		scanner: scanner,
		cfg:     cfg,
	}
}

func (p *FileParser) ReadFlightData() (*model.Flight, model.GoalType, error) {
	goalType, err := p.readGoalType()
	if err != nil {
		return nil, 0, err
	}

	impressionGoal, err := p.readImpressionGoal(apierror.NonNegative)
	if err != nil {
		return nil, 0, err
	}

	flight, err := p.readFlightRange(impressionGoal)
	if err != nil {
		return nil, 0, err
	}

	return flight, goalType, nil
}

func (p *FileParser) ReadEvents() <-chan model.WrappedScheduledEvent {
	eventsChan := make(chan model.WrappedScheduledEvent, p.cfg.EventsChanSize)

	go func() {
		defer close(eventsChan)

		for p.scanWithRowNumber() {
			event, err := p.readEvent()
			if err != nil {
				eventsChan <- model.WrappedScheduledEvent{Err: err}
				return
			}

			eventsChan <- model.WrappedScheduledEvent{Event: event}
		}
	}()

	return eventsChan
}

func (p *FileParser) scanWithRowNumber() bool {
	p.rowNumber++
	return p.scanner.Scan()
}

func (p *FileParser) readGoalType() (model.GoalType, error) {
	if !p.scanWithRowNumber() {
		return 0, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrGoalTypeNotSpecified,
		}
	}

	goalType, err := model.ParseGoalType(p.scanner.Text())
	if err != nil {
		return 0, &apierror.ValidationError{
			RowNumber: p.rowNumber,
			UserMsg:   err.Error(),
		}
	}

	return goalType, nil
}

func (p *FileParser) readImpressionGoal(validate apierror.ValidationFn[float64]) (float64, error) {
	if !p.scanWithRowNumber() {
		return 0, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrImpressionGoalNotSpecified,
		}
	}

	goal, err := strconv.ParseFloat(strings.TrimSpace(p.scanner.Text()), 64)
	if err != nil {
		return 0, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrImpressionGoalInvalidFormat,
			BaseErr:   err,
		}
	}

	if e := validate(goal); e != nil {
		return 0, &apierror.ValidationError{
			RowNumber: p.rowNumber,
			UserMsg:   e.Error(),
		}
	}

	return goal, nil
}

func (p *FileParser) readFlightRange(impressionGoal float64) (*model.Flight, error) {
	if !p.scanWithRowNumber() {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFlightNotSpecified,
		}
	}

	bounds := strings.Split(p.scanner.Text(), p.cfg.FieldSeparator)
	if len(bounds) != 2 {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFlightInvalidFormat,
		}
	}

	start, err := time.Parse(p.cfg.TimeLayout, bounds[0])
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFailedToParseStartTime,
			BaseErr:   err,
		}
	}

	end, err := time.Parse(p.cfg.TimeLayout, bounds[1])
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFailedToParseEndTime,
			BaseErr:   err,
		}
	}

	flight, err := model.NewFlight(start, end, impressionGoal)
	if err != nil {
		return nil, &apierror.ValidationError{
			RowNumber: p.rowNumber,
			UserMsg:   err.Error(),
		}
	}

	return flight, nil
}

func (p *FileParser) readEvent() (*model.ScheduledEvent, error) {
	fields := strings.SplitN(p.scanner.Text(), p.cfg.FieldSeparator, p.cfg.EventFieldCount)
	if len(fields) < p.cfg.EventFieldCount-1 {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrEventInvalidFormat,
		}
	}

	start, err := time.Parse(p.cfg.TimeLayout, fields[0])
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFailedToParseEventStartTime,
			BaseErr:   err,
		}
	}

	end, err := time.Parse(p.cfg.TimeLayout, fields[1])
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFailedToParseEventEndTime,
			BaseErr:   err,
		}
	}

	goalPercent, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrEventPercentInvalidFormat,
			BaseErr:   err,
		}
	}

	// The title is optional and free-form; blank titles fall back to
	// "Untitled" at render time, not here.
	var title string
	if len(fields) == p.cfg.EventFieldCount {
		title = fields[3]
	}

	event, err := model.NewScheduledEvent(start, end, goalPercent, title)
	if err != nil {
		return nil, &apierror.ValidationError{
			RowNumber: p.rowNumber,
			UserMsg:   err.Error(),
		}
	}

	return event, nil
}
