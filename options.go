package bitvec

// Mode selects how operations validate their preconditions.
type Mode int

const (
	// ModeStrict validates every index and lifecycle precondition and
	// reports violations through the configured ViolationHandler.
	ModeStrict Mode = iota

	// ModeFast performs no validation. The caller guarantees correctness;
	// behavior on a contract violation is undefined, like a release build
	// with assertions compiled out.
	ModeFast
)

// ViolationHandler receives contract violations detected in ModeStrict.
// After the handler returns, the offending operation becomes a no-op
// (reads return the zero value).
type ViolationHandler func(err error)

// PanicOnViolation panics with the typed violation error. This is the
// default handler.
func PanicOnViolation(err error) { panic(err) }

// IgnoreViolations swallows the violation; the operation is silently
// skipped.
func IgnoreViolations(error) {}

// LogViolations returns a handler that logs each violation at warn level
// and continues. A nil logger discards the output.
func LogViolations(logger *Logger) ViolationHandler {
	if logger == nil {
		logger = NoopLogger()
	}
	return func(err error) {
		logger.Warn("contract violation", "error", err)
	}
}

type options struct {
	mode        Mode
	onViolation ViolationHandler
}

// Option configures constructor behavior.
//
// The validation settings of a vector are fixed at construction and carry
// over to clones, mirroring how a debug or release build fixes assertion
// behavior for the lifetime of the binary.
type Option func(*options)

// WithMode selects the validation mode.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithViolationHandler configures how strict-mode violations are reported.
// Passing nil restores the default PanicOnViolation. The handler is ignored
// in ModeFast.
func WithViolationHandler(h ViolationHandler) Option {
	return func(o *options) {
		if h == nil {
			h = PanicOnViolation
		}
		o.onViolation = h
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		mode:        ModeStrict,
		onViolation: PanicOnViolation,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
