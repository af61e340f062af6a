package controls

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultPresenceTimeout   = 5 * time.Second
	DefaultSuggestionTimeout = 10 * time.Second
	DefaultPollInterval      = 100 * time.Millisecond
)

type settings struct {
	presenceTimeout   time.Duration
	suggestionTimeout time.Duration
	pollInterval      time.Duration
	log               *logrus.Entry
}

// Option tunes waits and logging of a control
type Option func(*settings)

func WithPresenceTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.presenceTimeout = d
	}
}

// WithSuggestionTimeout bounds how long a dynamic dropdown waits for its list
func WithSuggestionTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.suggestionTimeout = d
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(s *settings) {
		s.pollInterval = d
	}
}

// WithLogger sets the entry guard waits and selections are logged to
func WithLogger(log *logrus.Entry) Option {
	return func(s *settings) {
		s.log = log
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		presenceTimeout:   DefaultPresenceTimeout,
		suggestionTimeout: DefaultSuggestionTimeout,
		pollInterval:      DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		s.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return s
}
