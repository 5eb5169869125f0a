package namegen

import "strings"

// MaxSteps bounds the number of sampling steps in a single Generate call.
const MaxSteps = 1000

// Outcome records why a generation walk stopped.
type Outcome string

const (
	// OutcomeEnded means an End-marked continuation arrived once the name
	// was long enough.
	OutcomeEnded Outcome = "ended"

	// OutcomeNoMatch means no suffix of the current context was a key.
	OutcomeNoMatch Outcome = "no_match"

	// OutcomeStepCap means MaxSteps was reached without a clean ending.
	OutcomeStepCap Outcome = "step_cap"
)

// GenerateOptions parameterizes a generation walk.
type GenerateOptions struct {
	// Start is the prefix the name grows from. Empty starts from the Start
	// context.
	Start string

	// MinLength is the shortest name, in runes, accepted as finished.
	MinLength int

	// MaxChunkSize is the context window in runes. It is normally the value
	// the Distribution was built with.
	MaxChunkSize int

	// Window selects the lookup context for names longer than MaxChunkSize.
	// Empty means WindowSkipHead.
	Window ContextWindow
}

func (o GenerateOptions) validate() error {
	if err := validateMaxChunkSize(o.MaxChunkSize); err != nil {
		return err
	}
	if o.MinLength < 0 {
		return &ConfigError{Field: "min length", Value: o.MinLength, Reason: "must not be negative"}
	}
	switch o.Window {
	case "", WindowSkipHead, WindowTail:
		return nil
	default:
		return &ConfigError{Field: "context window", Value: o.Window, Reason: "unknown window"}
	}
}

// Result is a generated name and how the walk ended.
type Result struct {
	Name    string
	Outcome Outcome
	Steps   int
}

// Ended reports whether the walk finished on an End-marked continuation.
func (r Result) Ended() bool { return r.Outcome == OutcomeEnded }

// Generate walks d from opts.Start and returns the synthesized name. Only an
// invalid configuration is an error; a walk that finds no continuation or
// hits MaxSteps returns whatever has accumulated, with the Outcome saying so.
func Generate(d *Distribution, src RandomSource, opts GenerateOptions) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	w := walk{
		dist:    d,
		src:     src,
		opts:    opts,
		name:    []rune(opts.Start),
		outcome: OutcomeStepCap,
	}
	w.run()

	name := w.name
	if IsEnded(w.pending) {
		name = append(name, []rune(strings.TrimSuffix(w.pending, End))...)
	}
	return Result{Name: string(name), Outcome: w.outcome, Steps: w.steps}, nil
}

// walk is the state threaded through one generation loop.
type walk struct {
	dist    *Distribution
	src     RandomSource
	opts    GenerateOptions
	name    []rune
	pending string
	steps   int
	outcome Outcome
}

func (w *walk) done() bool {
	return len(w.name) >= w.opts.MinLength && IsEnded(w.pending)
}

func (w *walk) run() {
	for ; ; w.steps++ {
		if w.done() {
			w.outcome = OutcomeEnded
			return
		}
		if w.steps == MaxSteps {
			w.outcome = OutcomeStepCap
			return
		}

		if w.pending != "" && !IsEnded(w.pending) {
			w.name = append(w.name, []rune(w.pending)...)
		}

		next, ok := w.sample()
		if !ok {
			w.outcome = OutcomeNoMatch
			return
		}
		w.pending = next
	}
}

func (w *walk) sample() (string, bool) {
	if len(w.name) == 0 {
		return w.dist.pick(Start, w.src)
	}
	return w.dist.Sample(string(fold(string(w.context()))), w.src)
}

// context returns the part of name used for lookup.
func (w *walk) context() []rune {
	size := w.opts.MaxChunkSize
	if len(w.name) <= size {
		return w.name
	}
	if w.opts.Window == WindowTail {
		return w.name[len(w.name)-size:]
	}
	return w.name[size:]
}
