package namegen

import (
	"errors"
	"testing"
	"unicode/utf8"
)

var sampleCorpus = []string{
	"Adelaide", "Agatha", "Alaric", "Anselm", "Beatrix", "Bertram", "Cedric",
	"Cordelia", "Dorothea", "Edmund", "Eleanor", "Florian", "Gwendolyn",
	"Isolde", "Leopold", "Matilda", "Oswald", "Rosalind", "Theodric", "Wilhelmina",
}

func defaultOptions(start string) GenerateOptions {
	return DefaultConfig().GenerateOptions(start)
}

func mustGenerate(t *testing.T, d *Distribution, src RandomSource, opts GenerateOptions) Result {
	t.Helper()
	res, err := Generate(d, src, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res
}

func TestGenerate_FirstBranch(t *testing.T) {
	d := mustBuild(t, []string{"anna", "anne"}, 8)
	res := mustGenerate(t, d, indexSource{0}, defaultOptions(""))

	want := Result{Name: "anna", Outcome: OutcomeEnded, Steps: 5}
	if res != want {
		t.Errorf("Generate = %+v, want %+v", res, want)
	}
	if !res.Ended() {
		t.Error("expected Ended()")
	}
}

func TestGenerate_EmptyCorpus(t *testing.T) {
	d := mustBuild(t, nil, 8)

	tests := []struct {
		start string
		want  string
	}{
		{"", ""},
		{"bob", "bob"},
	}
	for _, tt := range tests {
		res := mustGenerate(t, d, indexSource{0}, defaultOptions(tt.start))
		if res.Name != tt.want {
			t.Errorf("start %q: name = %q, want %q", tt.start, res.Name, tt.want)
		}
		if res.Outcome != OutcomeNoMatch {
			t.Errorf("start %q: outcome = %q, want %q", tt.start, res.Outcome, OutcomeNoMatch)
		}
		if res.Steps != 0 {
			t.Errorf("start %q: steps = %d, want 0", tt.start, res.Steps)
		}
	}
}

func TestGenerate_StepCap(t *testing.T) {
	d := mustBuild(t, []string{"anna", "anne"}, 8)

	// The last Start continuation is End-marked, so with a minimum length the
	// walk keeps drawing it without ever appending.
	res := mustGenerate(t, d, lastSource{}, defaultOptions(""))
	want := Result{Name: "anne", Outcome: OutcomeStepCap, Steps: MaxSteps}
	if res != want {
		t.Errorf("Generate = %+v, want %+v", res, want)
	}

	opts := defaultOptions("")
	opts.MinLength = 0
	res = mustGenerate(t, d, lastSource{}, opts)
	want = Result{Name: "anne", Outcome: OutcomeEnded, Steps: 1}
	if res != want {
		t.Errorf("Generate(min 0) = %+v, want %+v", res, want)
	}
}

func TestGenerate_StartPrefix(t *testing.T) {
	d := mustBuild(t, []string{"anna", "anne"}, 8)

	tests := []struct {
		name    string
		start   string
		want    string
		outcome Outcome
	}{
		{"known prefix", "ann", "anna", OutcomeEnded},
		{"prefix kept verbatim", "ANN", "ANNa", OutcomeEnded},
		{"suffix fallback", "qa", "qanna", OutcomeEnded},
		{"unknown prefix", "xyz", "xyz", OutcomeNoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustGenerate(t, d, indexSource{0}, defaultOptions(tt.start))
			if res.Name != tt.want || res.Outcome != tt.outcome {
				t.Errorf("Generate(%q) = %q (%s), want %q (%s)", tt.start, res.Name, res.Outcome, tt.want, tt.outcome)
			}
		})
	}
}

func TestGenerate_SingleRuneWindow(t *testing.T) {
	d := mustBuild(t, []string{"abc"}, 1)
	opts := defaultOptions("")
	opts.MaxChunkSize = 1

	res := mustGenerate(t, d, indexSource{0}, opts)
	if res.Name != "abc" || res.Outcome != OutcomeEnded {
		t.Errorf("Generate = %+v, want abc (ended)", res)
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	d := mustBuild(t, []string{"anna"}, 8)

	tests := []struct {
		name string
		opts GenerateOptions
	}{
		{"zero chunk size", GenerateOptions{MaxChunkSize: 0, MinLength: 3}},
		{"negative chunk size", GenerateOptions{MaxChunkSize: -2, MinLength: 3}},
		{"negative min length", GenerateOptions{MaxChunkSize: 8, MinLength: -1}},
		{"unknown window", GenerateOptions{MaxChunkSize: 8, MinLength: 3, Window: "middle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(d, indexSource{0}, tt.opts)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	d := mustBuild(t, sampleCorpus, 8)

	run := func(seed uint64) []Result {
		src := NewSource(seed)
		var out []Result
		for range 25 {
			out = append(out, mustGenerate(t, d, src, defaultOptions("")))
		}
		return out
	}

	a, b := run(42), run(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_MinLengthOnEndedPath(t *testing.T) {
	d := mustBuild(t, sampleCorpus, 8)

	for _, minLength := range []int{3, 5, 7} {
		opts := defaultOptions("")
		opts.MinLength = minLength
		for seed := range uint64(200) {
			res := mustGenerate(t, d, NewSource(seed), opts)
			if res.Outcome != OutcomeEnded {
				continue
			}
			if n := utf8.RuneCountInString(res.Name); n < minLength {
				t.Errorf("min %d seed %d: %q has %d runes", minLength, seed, res.Name, n)
			}
		}
	}
}

func TestGenerate_NeverContainsSentinels(t *testing.T) {
	d := mustBuild(t, sampleCorpus, 6)
	for seed := range uint64(100) {
		res := mustGenerate(t, d, NewSource(seed), defaultOptions(""))
		for _, r := range res.Name {
			if string(r) == Start || string(r) == End {
				t.Fatalf("seed %d: sentinel leaked into %q", seed, res.Name)
			}
		}
	}
}

func TestWalkContext(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		size   int
		window ContextWindow
		want   string
	}{
		{"short name", "abc", 8, WindowSkipHead, "abc"},
		{"exact size", "abcdefgh", 8, WindowSkipHead, "abcdefgh"},
		{"skip head", "abcdefghij", 8, WindowSkipHead, "ij"},
		{"default window skips head", "abcdefghij", 8, "", "ij"},
		{"tail", "abcdefghij", 8, WindowTail, "cdefghij"},
		{"skip head keeps long remainder", "abcdefghij", 3, WindowSkipHead, "defghij"},
		{"tail small window", "abcdefghij", 3, WindowTail, "hij"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := walk{name: []rune(tt.text), opts: GenerateOptions{MaxChunkSize: tt.size, Window: tt.window}}
			if got := string(w.context()); got != tt.want {
				t.Errorf("context() = %q, want %q", got, tt.want)
			}
		})
	}
}
