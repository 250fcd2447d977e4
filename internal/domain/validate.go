package domain

import (
	"strings"
	"unicode/utf8"
)

// Submission is an accepted, normalized quote submission. Both fields are
// trimmed of surrounding whitespace and ready to hand to the store.
type Submission struct {
	Text   string
	Author string
}

// NormalizeSubmission runs the structural validation pipeline on a candidate
// (text, author) pair. The checks run in a fixed order and the first failure
// wins, so callers get deterministic error reporting:
//
//  1. Both fields present (non-nil).
//  2. Both fields are strings.
//  3. Trimmed fields are non-empty.
//  4. Text length is at most MaxTextLength.
//  5. Author length is at most MaxAuthorLength.
//
// Length checks apply to the submitted value before trimming; only the
// accepted result is trimmed. Inputs are typed any because submissions arrive
// from decoded JSON, where a field may be absent or carry a non-string value.
// Moderation is a separate concern and runs only after this pipeline accepts.
func NormalizeSubmission(text, author any) (Submission, error) {
	if text == nil {
		return Submission{}, NewValidationError("text", "text is required")
	}
	if author == nil {
		return Submission{}, NewValidationError("author", "author is required")
	}

	textStr, ok := text.(string)
	if !ok {
		return Submission{}, NewValidationError("text", "text must be a string")
	}
	authorStr, ok := author.(string)
	if !ok {
		return Submission{}, NewValidationError("author", "author must be a string")
	}

	if strings.TrimSpace(textStr) == "" {
		return Submission{}, NewValidationError("text", "text must not be empty")
	}
	if strings.TrimSpace(authorStr) == "" {
		return Submission{}, NewValidationError("author", "author must not be empty")
	}

	if utf8.RuneCountInString(textStr) > MaxTextLength {
		return Submission{}, NewValidationError("text", "text must be at most 1000 characters")
	}
	if utf8.RuneCountInString(authorStr) > MaxAuthorLength {
		return Submission{}, NewValidationError("author", "author must be at most 100 characters")
	}

	return Submission{
		Text:   strings.TrimSpace(textStr),
		Author: strings.TrimSpace(authorStr),
	}, nil
}
