package nbt

import (
	"log/slog"
	"os"

	"github.com/signadot/enbt/debug"
)

// Option configures a Writer.
type Option func(*writerOpts)

type writerOpts struct {
	autoComplete bool
	maxDepth     int
	fill         Fill
	log          *slog.Logger
}

func defaultOpts() *writerOpts {
	return &writerOpts{
		autoComplete: true,
		maxDepth:     DefaultMaxDepth,
		fill:         DefaultFill,
	}
}

// WithAutoComplete controls whether Close completes containers that are
// still open. When disabled they are abandoned and the output is not a
// well-formed document.
func WithAutoComplete(v bool) Option {
	return func(o *writerOpts) {
		o.autoComplete = v
	}
}

// WithMaxDepth sets the capacity of the context stack. Values <= 0
// select DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *writerOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// WithFill sets the placeholder values used by auto-completion. Strings
// too long to encode are replaced by the corresponding DefaultFill value.
func WithFill(f Fill) Option {
	return func(o *writerOpts) {
		if len(f.String) > maxStringLen {
			f.String = DefaultFill.String
		}
		if len(f.WarningName) > maxStringLen {
			f.WarningName = DefaultFill.WarningName
		}
		if len(f.WarningText) > maxStringLen {
			f.WarningText = DefaultFill.WarningText
		}
		o.fill = f
	}
}

// WithLogger sets the logger used for rejected operations and close
// summaries. Messages are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *writerOpts) {
		o.log = l
	}
}

func (o *writerOpts) logger() *slog.Logger {
	if o.log != nil {
		return o.log
	}
	if debug.Writer() {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}
