package todo

import (
	"time"

	"github.com/nhle/todolists/internal/model"
)

type options struct {
	now   func() time.Time
	dueIn time.Duration
}

// Option configures Lists and Items.
type Option func(*options)

// WithClock replaces time.Now as the source of creation instants.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithDefaultDueIn sets how long after creation an item without an explicit
// due date is due. Non-positive values keep the default of seven days.
func WithDefaultDueIn(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.dueIn = d
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now, dueIn: model.DefaultDueIn}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
