package namegen

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// Start is the context key for "nothing precedes this continuation".
	Start = "\x02"

	// End marks a continuation that reaches the end of its source example.
	End = "\x03"
)

// Distribution maps context keys to the continuations observed after them.
// Buckets keep insertion order and duplicates. A Distribution is never
// mutated after Build returns.
type Distribution struct {
	maxChunkSize int
	buckets      map[string][]string
	keys         []string
}

// Stats summarizes a Distribution.
type Stats struct {
	Keys          int // context keys, Start included
	Continuations int // total continuations across all buckets
	StartBucket   int // continuations under Start
	LongestKey    int // runes in the longest non-Start key
}

// Build trains a Distribution from corpus. Every example is lower-cased rune
// by rune before it is split into windows. An empty corpus produces a
// Distribution whose only key is an empty Start bucket.
func Build(corpus []string, maxChunkSize int) (*Distribution, error) {
	if err := validateMaxChunkSize(maxChunkSize); err != nil {
		return nil, err
	}

	d := &Distribution{
		maxChunkSize: maxChunkSize,
		buckets:      make(map[string][]string),
	}
	d.add(Start)

	for _, example := range corpus {
		d.addExample(fold(example))
	}
	return d, nil
}

func (d *Distribution) addExample(chars []rune) {
	if len(chars) == 0 {
		return
	}

	leading := windowContinuations(chars, -1, d.maxChunkSize)
	startRegistered := false

	for i := range chars {
		next := windowContinuations(chars, i, d.maxChunkSize)
		for w := 1; w <= d.maxChunkSize; w++ {
			// Windows reaching before the first rune stand in for Start. Every
			// such width registers the leading runs again, which weights Start
			// by the window size.
			if i-(w-1) < 0 {
				d.add(Start, leading...)
				startRegistered = true
				continue
			}
			d.add(string(chars[i-w+1:i+1]), next...)
		}
	}

	// With single-rune windows no width ever reaches before the first rune.
	if !startRegistered {
		d.add(Start, leading...)
	}
}

func (d *Distribution) add(key string, continuations ...string) {
	bucket, ok := d.buckets[key]
	if !ok {
		d.keys = append(d.keys, key)
	}
	d.buckets[key] = append(bucket, continuations...)
}

// MaxChunkSize returns the window size the Distribution was built with.
func (d *Distribution) MaxChunkSize() int { return d.maxChunkSize }

// Len returns the number of context keys, Start included.
func (d *Distribution) Len() int { return len(d.keys) }

// Keys returns the context keys in first-seen order.
func (d *Distribution) Keys() []string { return slices.Clone(d.keys) }

// Continuations returns a copy of the bucket for key, or nil when the key is
// unknown.
func (d *Distribution) Continuations(key string) []string {
	return slices.Clone(d.buckets[key])
}

// Has reports whether key is a context key.
func (d *Distribution) Has(key string) bool {
	_, ok := d.buckets[key]
	return ok
}

// Stats computes summary counts.
func (d *Distribution) Stats() Stats {
	s := Stats{Keys: len(d.keys), StartBucket: len(d.buckets[Start])}
	for key, bucket := range d.buckets {
		s.Continuations += len(bucket)
		if key == Start {
			continue
		}
		if n := utf8.RuneCountInString(key); n > s.LongestKey {
			s.LongestKey = n
		}
	}
	return s
}

// Sample returns a continuation for the longest suffix of text that is a
// context key: text itself first, then text without its first rune, and so
// on. The continuation is drawn uniformly from the whole bucket. It reports
// false when no suffix of text has a non-empty bucket.
func (d *Distribution) Sample(text string, src RandomSource) (string, bool) {
	for i := range text {
		if next, ok := d.pick(text[i:], src); ok {
			return next, true
		}
	}
	return "", false
}

func (d *Distribution) pick(key string, src RandomSource) (string, bool) {
	bucket := d.buckets[key]
	if len(bucket) == 0 {
		return "", false
	}
	return bucket[src.IntN(len(bucket))], true
}

// IsEnded reports whether continuation is End-marked.
func IsEnded(continuation string) bool {
	return strings.HasSuffix(continuation, End)
}
