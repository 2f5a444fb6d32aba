package config

import "github.com/ilyakaznacheev/cleanenv"

type Parser struct {

	// TimeLayout is a layout for time.Parse() / time.Time.Format()
	// See https://golang.org/pkg/time/#Time.Format
	//
	// Example: "2006-01-02T15:04" for "2024-03-27T06:00"
	TimeLayout string `env:"TIME_LAYOUT" env-default:"2006-01-02T15:04"`

	// FieldSeparator is a separator between fields of one row
	//
	// Example: " " for "2024-03-27T06:00 2024-03-27T09:00 20 Launch"
	FieldSeparator string `env:"FIELD_SEPARATOR" env-default:" "`

	// EventFieldCount is the number of distinct event fields.
	// The trailing title field is optional and may contain separators.
	EventFieldCount int `env:"EVENT_FIELD_COUNT" env-default:"4"`

	// EventsChanSize is a size of events channel
	EventsChanSize int `env:"EVENTS_CHAN_SIZE" env-default:"10"`
}

type Render struct {

	// TimeLayout is a layout for time.Time.Format() used in output rows
	TimeLayout string `env:"TIME_LAYOUT" env-default:"2006-01-02T15:04"`
}

func NewParserConfig() (*Parser, error) {
	var cfg Parser
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func NewRenderConfig() (*Render, error) {
	var cfg Render
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
