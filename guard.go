package guard

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/jmgilman/go/guard/errors"
)

// DefaultSecureMessage is returned by PerformSecureOperation unless overridden.
const DefaultSecureMessage = "User logged in."

// Sentinels for matching operation failures with errors.Is.
var (
	ErrNullInput       = errors.Sentinel(errors.CodeNullInput)
	ErrInvalidArgument = errors.Sentinel(errors.CodeInvalidArgument)
	ErrIndexOutOfRange = errors.Sentinel(errors.CodeIndexOutOfRange)
	ErrInvalidState    = errors.Sentinel(errors.CodeInvalidState)
	ErrFormat          = errors.Sentinel(errors.CodeFormat)
	ErrKeyNotFound     = errors.Sentinel(errors.CodeKeyNotFound)
	ErrOverflow        = errors.Sentinel(errors.CodeOverflow)
	ErrDivideByZero    = errors.Sentinel(errors.CodeDivideByZero)
)

// Guard runs validated operations.
// The zero value and a nil *Guard are ready to use and behave like New().
type Guard struct {
	logger        *slog.Logger
	secureMessage string
}

// Option is a function that configures a Guard.
type Option func(*Guard)

// WithLogger returns an Option that sets the logger receiving precondition violations.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		g.logger = logger
	}
}

// WithSecureMessage returns an Option that sets the message returned by
// PerformSecureOperation for a logged-in user. An empty msg keeps
// DefaultSecureMessage, the same as a zero-value Guard.
func WithSecureMessage(msg string) Option {
	return func(g *Guard) {
		g.secureMessage = msg
	}
}

// New creates a new Guard with the given options.
func New(opts ...Option) *Guard {
	g := &Guard{
		logger:        slog.New(slog.DiscardHandler),
		secureMessage: DefaultSecureMessage,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Guard) log() *slog.Logger {
	if g == nil || g.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.logger
}

func (g *Guard) message() string {
	if g == nil || g.secureMessage == "" {
		return DefaultSecureMessage
	}
	return g.secureMessage
}

// fail tags err with the operation name, logs it, and returns it.
func (g *Guard) fail(operation string, err errors.CodedError) error {
	err = errors.WithContext(err, "operation", operation)

	ctx := err.Context()
	attrs := make([]interface{}, 0, 2+2*len(ctx))
	attrs = append(attrs, "code", string(err.Code()))
	for _, key := range slices.Sorted(maps.Keys(ctx)) {
		attrs = append(attrs, key, ctx[key])
	}
	g.log().Debug("precondition violated", attrs...)

	return err
}
