package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// wordListClassifier is a test double with a fixed word list, so the tests
// for Classify don't depend on the backing library's dictionary.
type wordListClassifier struct {
	words map[string]bool
}

func (c *wordListClassifier) Profane(text string) bool {
	return c.words[text]
}

func TestClassify_Clean(t *testing.T) {
	c := &wordListClassifier{words: map[string]bool{}}

	result := Classify(c, "Stay hungry, stay foolish.", "Steve Jobs")
	assert.True(t, result.Valid)
	assert.Empty(t, result.Field)
	assert.Empty(t, result.Reason)
}

func TestClassify_TextMatch(t *testing.T) {
	c := &wordListClassifier{words: map[string]bool{"bad quote": true}}

	result := Classify(c, "bad quote", "Someone")
	assert.False(t, result.Valid)
	assert.Equal(t, "text", result.Field)
	assert.Contains(t, result.Reason, "inappropriate")
	assert.NotContains(t, result.Reason, "bad quote", "reason must not echo the content")
}

func TestClassify_AuthorMatch(t *testing.T) {
	c := &wordListClassifier{words: map[string]bool{"bad author": true}}

	result := Classify(c, "a fine quote", "bad author")
	assert.False(t, result.Valid)
	assert.Equal(t, "author", result.Field)
}

func TestClassify_TextCheckedBeforeAuthor(t *testing.T) {
	c := &wordListClassifier{words: map[string]bool{"bad quote": true, "bad author": true}}

	result := Classify(c, "bad quote", "bad author")
	assert.Equal(t, "text", result.Field)
}

func TestFilter_DefaultDictionary(t *testing.T) {
	f := NewFilter(Config{})

	tests := []struct {
		name    string
		text    string
		profane bool
	}{
		{name: "clean text", text: "The only limit is your imagination.", profane: false},
		{name: "plain profanity", text: "This is a damn test", profane: true},
		{name: "uppercase", text: "This is a DAMN test", profane: true},
		{name: "leet speak", text: "this is sh1t", profane: true},
		{name: "empty string", text: "", profane: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.profane, f.Profane(tt.text))
		})
	}
}

func TestFilter_ExtraWords(t *testing.T) {
	f := NewFilter(Config{ExtraWords: []string{"flimflam"}})

	assert.True(t, f.Profane("what a flimflam story"))
	assert.False(t, f.Profane("what a story"))

	// Default dictionary still applies alongside the extra words.
	assert.True(t, f.Profane("damn"))
}

func TestFilter_Deterministic(t *testing.T) {
	f := NewFilter(Config{})

	first := f.Profane("this is a damn test")
	for range 10 {
		assert.Equal(t, first, f.Profane("this is a damn test"))
	}
}
