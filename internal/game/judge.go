package game

import "strings"

// WordOutcome is the judge's verdict on a word.
type WordOutcome int

const (
	WordInvalid WordOutcome = iota
	WordValid
	// WordObjectionable marks a word that is present in the wordlist
	// but flagged; the rules treat it as invalid unless
	// Rules.AllowObjectionable is set.
	WordObjectionable
)

// String returns the outcome name.
func (o WordOutcome) String() string {
	switch o {
	case WordValid:
		return "Valid"
	case WordInvalid:
		return "Invalid"
	case WordObjectionable:
		return "Objectionable"
	default:
		return "Unknown"
	}
}

// WordData carries the per-word metadata from the dictionary file.
// Extensions is an extensibility heuristic and RelFreq a corpus
// frequency; neither affects the rules.
type WordData struct {
	Extensions    int
	RelFreq       float64
	Objectionable bool
}

// Judge owns the wordlist. It is read-only after construction and safe
// to share across games and goroutines.
type Judge struct {
	words map[string]WordData
}

// NewJudge builds a judge from dictionary entries keyed by lowercase
// word.
func NewJudge(words map[string]WordData) *Judge {
	j := &Judge{words: make(map[string]WordData, len(words))}
	for w, d := range words {
		j.words[strings.ToLower(w)] = d
	}
	return j
}

// NewJudgeFromWords builds a judge from a bare word list, mostly for
// tests.
func NewJudgeFromWords(words []string) *Judge {
	m := make(map[string]WordData, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = WordData{}
	}
	return &Judge{words: m}
}

// Lookup judges a word. Single letters are never valid regardless of
// list content.
func (j *Judge) Lookup(word string) WordOutcome {
	if len(word) <= 1 {
		return WordInvalid
	}
	data, ok := j.words[strings.ToLower(word)]
	if !ok {
		return WordInvalid
	}
	if data.Objectionable {
		return WordObjectionable
	}
	return WordValid
}

// Data exposes the dictionary metadata for a word.
func (j *Judge) Data(word string) (WordData, bool) {
	data, ok := j.words[strings.ToLower(word)]
	return data, ok
}

// Len reports the number of dictionary entries.
func (j *Judge) Len() int {
	return len(j.words)
}

// wordCountsAsValid applies the objectionable policy knob on top of
// the judge's verdict.
func wordCountsAsValid(o WordOutcome, rules Rules) bool {
	if o == WordValid {
		return true
	}
	return o == WordObjectionable && rules.AllowObjectionable
}
