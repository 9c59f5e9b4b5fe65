package animpool

import "log/slog"

// Option configures a Pool.
type Option func(*options)

type options struct {
	logger           *slog.Logger
	defaultFrameRate float64
}

func defaultOptions() options {
	return options{defaultFrameRate: DefaultFrameRate}
}

// WithLogger routes the pool's diagnostics to l instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDefaultFrameRate sets the rate used for animations whose frame count
// or duration is not positive. Non-positive values are ignored.
func WithDefaultFrameRate(fps float64) Option {
	return func(o *options) {
		if fps > 0 {
			o.defaultFrameRate = fps
		}
	}
}
