// Package moderation classifies submitted content against a disallowed-word
// list. Classification is pure and deterministic: no I/O, no shared mutable
// state, safe to call concurrently without synchronization.
package moderation

import (
	goaway "github.com/TwiN/go-away"
)

// Classifier reports whether a piece of text contains disallowed content.
// The concrete word list and matching algorithm sit behind this interface so
// they can be swapped without touching the submission pipeline.
type Classifier interface {
	Profane(text string) bool
}

// Result is the outcome of classifying a submission. It is ephemeral -
// computed per call, never persisted.
type Result struct {
	// Valid is true when no field matched the disallowed-word list.
	Valid bool

	// Field names the first offending field ("text" or "author") on a match.
	Field string

	// Reason is a human-readable rejection reason. It identifies that
	// disallowed content was found without disclosing the matched word.
	Reason string
}

// Classify checks a submission's text and author, in that order, against the
// given classifier. Both fields are checked symmetrically; the first match
// wins. Callers run this only after structural validation has accepted the
// submission, so a too-long profane quote is rejected for length, not content.
func Classify(c Classifier, text, author string) Result {
	if c.Profane(text) {
		return Result{
			Field:  "text",
			Reason: "quote text contains inappropriate content",
		}
	}

	if c.Profane(author) {
		return Result{
			Field:  "author",
			Reason: "quote author contains inappropriate content",
		}
	}

	return Result{Valid: true}
}

// Filter is a Classifier backed by the go-away profanity word list.
// Matching is case-insensitive, normalizes leet-speak substitutions, and
// catches disallowed words embedded inside longer tokens.
type Filter struct {
	detector *goaway.ProfanityDetector
}

// Config controls the word list the filter matches against.
type Config struct {
	// ExtraWords are appended to the default disallowed-word list.
	ExtraWords []string
}

// NewFilter creates a moderation filter. With a zero Config it uses the
// library's default dictionary unchanged.
func NewFilter(cfg Config) *Filter {
	detector := goaway.NewProfanityDetector()

	if len(cfg.ExtraWords) > 0 {
		profanities := make([]string, 0, len(goaway.DefaultProfanities)+len(cfg.ExtraWords))
		profanities = append(profanities, goaway.DefaultProfanities...)
		profanities = append(profanities, cfg.ExtraWords...)

		detector = detector.WithCustomDictionary(
			profanities,
			goaway.DefaultFalsePositives,
			goaway.DefaultFalseNegatives,
		)
	}

	return &Filter{detector: detector}
}

// Profane implements Classifier.
func (f *Filter) Profane(text string) bool {
	return f.detector.IsProfane(text)
}
