// Package namegen learns a character-level distribution from a corpus of names
// and samples new names from it.
//
// Training (Build) turns every example into context → continuation pairs: each
// context is a run of up to MaxChunkSize characters, each continuation is a run
// of up to MaxChunkSize characters that followed it, End-marked when it reaches
// the end of the example. Continuations are stored with duplicates, so sampling
// uniformly from a bucket reproduces the corpus frequencies.
//
// Generation (Generate) walks the distribution from the Start context, appending
// sampled continuations until an End-marked continuation arrives and the name
// is at least MinLength characters long. The walk is bounded by MaxSteps.
//
// A built Distribution is immutable and safe for concurrent readers. Random
// sources are not: give every goroutine its own.
package namegen
