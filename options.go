package emitter

import (
	"errors"
	"log/slog"
)

// ErrorHandler receives errors returned from handlers during [Emitter.Dispatch].
type ErrorHandler func(evt Event, err error)

// ConfigFunc sets an option on an [Emitter] created with [NewEmitter].
type ConfigFunc func(conf *emitterConf) error

type emitterConf struct {
	logger     *slog.Logger
	errHandler ErrorHandler
}

func defaultConf() emitterConf {
	return emitterConf{}
}

func (c *emitterConf) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// WithLogger sets the logger used by the [Emitter].
// By default, [slog.Default] is used.
func WithLogger(logger *slog.Logger) ConfigFunc {
	return func(conf *emitterConf) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		conf.logger = logger
		return nil
	}
}

// WithErrorHandler overrides how handler errors are reported from [Emitter.Dispatch].
// The default logs the error at error level.
func WithErrorHandler(handler ErrorHandler) ConfigFunc {
	return func(conf *emitterConf) error {
		if handler == nil {
			return errors.New("nil error handler")
		}
		conf.errHandler = handler
		return nil
	}
}
