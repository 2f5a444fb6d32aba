package apierror

const (
	ErrGoalTypeNotSpecified = "goal type is not specified"
	ErrUnknownGoalType      = "unknown goal type"

	ErrImpressionGoalNotSpecified  = "impression goal is not specified"
	ErrImpressionGoalInvalidFormat = "impression goal is not a number"

	ErrFlightNotSpecified     = "flight range is not specified"
	ErrFlightInvalidFormat    = "flight range must be in format: <start> <end>"
	ErrFailedToParseStartTime = "failed to parse start time"
	ErrFailedToParseEndTime   = "failed to parse end time"

	ErrEventInvalidFormat          = "event must be in format: <start> <end> <goal-percent> <title>"
	ErrFailedToParseEventStartTime = "failed to parse event start time"
	ErrFailedToParseEventEndTime   = "failed to parse event end time"
	ErrEventPercentInvalidFormat   = "event goal percent is not a number"

	ErrValueMustBeNonNegative = "value must not be negative"
)
