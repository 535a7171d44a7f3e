// Package data holds the in-memory model of sequence-labeled text: tokens with
// per-type tags, sentences that own them, and spans decoded from the tags.
//
// A Sentence owns its tokens. Tokens never point back to their sentence; anything
// that needs the sentence (head resolution, span extraction) receives it explicitly.
// Sentences and tokens are mutated in place and are not safe for concurrent use.
package data

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/seqtag/seqtag/common"
	"github.com/ZanzyTHEbar/seqtag/seqtag/embedding"
	"github.com/ZanzyTHEbar/seqtag/seqtag/label"
	"github.com/ZanzyTHEbar/seqtag/seqtag/tagscheme"

	"gonum.org/v1/gonum/mat"
)

// Sentence is an ordered collection of tokens with sentence-level labels.
type Sentence struct {
	tokens []*Token
	labels []label.Label

	embeddings embedding.Store
}

// NewSentence creates an empty sentence.
func NewSentence(labels ...label.Label) *Sentence {
	s := &Sentence{}
	s.AddLabels(labels...)
	return s
}

// NewSentenceFromText splits text on the space character. Runs of spaces are
// skipped; offsets count characters from the start of text.
func NewSentenceFromText(text string) (*Sentence, error) {
	if text == "" {
		return nil, common.Validationf("cannot convert empty string to a sentence")
	}

	s := NewSentence()
	runes := []rune(text)
	wordStart := -1
	for i, r := range runes {
		if r == ' ' {
			if wordStart >= 0 {
				s.AddToken(NewTokenAt(string(runes[wordStart:i]), wordStart))
			}
			wordStart = -1
			continue
		}
		if wordStart < 0 {
			wordStart = i
		}
	}
	if wordStart >= 0 {
		s.AddToken(NewTokenAt(string(runes[wordStart:]), wordStart))
	}
	return s, nil
}

// NewSentenceFromTokens builds a sentence from words produced by an external
// tokenizer over text. Offsets are recovered by searching each word in text after
// the previous one. A word that does not occur verbatim (a synthesized contraction
// fragment, say) is placed one past the previous token's end. A token directly
// adjacent to the previous one clears the previous token's WhitespaceAfter.
func NewSentenceFromTokens(text string, words []string) *Sentence {
	s := NewSentence()
	haystack := []rune(text)

	runningOffset := 0
	lastWordOffset := -1
	var lastToken *Token
	for _, word := range words {
		needle := []rune(word)

		var wordOffset, start int
		if found := indexRunes(haystack, needle, runningOffset); found >= 0 {
			wordOffset = found
			start = found
		} else {
			wordOffset = lastWordOffset + 1
			start = runningOffset
			if runningOffset > 0 {
				start = runningOffset + 1
			}
		}

		token := NewTokenAt(word, start)
		s.AddToken(token)

		if wordOffset-1 == lastWordOffset && lastToken != nil {
			lastToken.WhitespaceAfter = false
		}

		runningOffset = wordOffset + len(needle)
		lastWordOffset = runningOffset - 1
		lastToken = token
	}
	return s
}

// Tokenizer splits raw text into word strings.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenizerFunc adapts a function to the Tokenizer interface.
type TokenizerFunc func(text string) []string

func (f TokenizerFunc) Tokenize(text string) []string { return f(text) }

// NewSentenceWithTokenizer tokenizes text with tok and recovers offsets and
// whitespace from text.
func NewSentenceWithTokenizer(text string, tok Tokenizer) *Sentence {
	return NewSentenceFromTokens(text, tok.Tokenize(text))
}

// indexRunes returns the first index >= from where needle occurs in haystack, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(haystack) {
		return -1
	}
	if len(needle) == 0 {
		return from
	}
	rest := string(haystack[from:])
	idx := strings.Index(rest, string(needle))
	if idx < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(rest[:idx])
}

// AddToken appends t, assigning its Idx when it is unset.
func (s *Sentence) AddToken(t *Token) {
	s.tokens = append(s.tokens, t)
	if t.Idx == 0 {
		t.Idx = len(s.tokens)
	}
}

// GetToken returns the token with the given Idx.
func (s *Sentence) GetToken(id int) (*Token, bool) {
	for _, t := range s.tokens {
		if t.Idx == id {
			return t, true
		}
	}
	return nil, false
}

// Tokens returns the tokens in sentence order. The slice is a copy; the tokens are shared.
func (s *Sentence) Tokens() []*Token {
	out := make([]*Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// At returns the token at 0-based position i.
func (s *Sentence) At(i int) *Token { return s.tokens[i] }

func (s *Sentence) Len() int { return len(s.tokens) }

// AddLabel appends a sentence-level label.
func (s *Sentence) AddLabel(l label.Label) {
	s.labels = append(s.labels, l)
}

func (s *Sentence) AddLabels(labels ...label.Label) {
	s.labels = append(s.labels, labels...)
}

// AddLabelValues appends labels with the default score.
func (s *Sentence) AddLabelValues(values ...string) {
	for _, v := range values {
		s.AddLabel(label.New(v, label.DefaultScore))
	}
}

func (s *Sentence) Labels() []label.Label {
	out := make([]label.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// LabelNames returns the values of the sentence-level labels.
func (s *Sentence) LabelNames() []string {
	names := make([]string, len(s.labels))
	for i, l := range s.labels {
		names[i] = l.Value
	}
	return names
}

// SetEmbedding attaches a named sentence-level vector.
func (s *Sentence) SetEmbedding(name string, vec mat.Vector) {
	s.embeddings.Set(name, vec)
}

// Embedding concatenates the sentence-level vectors ordered by name.
func (s *Sentence) Embedding() *mat.VecDense {
	return s.embeddings.Concat()
}

// ClearEmbeddings drops sentence vectors, and token vectors too when alsoTokens is set.
func (s *Sentence) ClearEmbeddings(alsoTokens bool) {
	s.embeddings.Clear()
	if !alsoTokens {
		return
	}
	for _, t := range s.tokens {
		t.ClearEmbeddings()
	}
}

// ConvertTagScheme rewrites the tags of tagType to the target scheme. Tokens
// without a tag of that type are treated as empty-valued tags, which are not
// valid IOB. Scores are preserved. Nothing changes when an error is returned.
func (s *Sentence) ConvertTagScheme(tagType string, scheme tagscheme.Scheme) error {
	tags := make([]label.Label, len(s.tokens))
	for i, t := range s.tokens {
		tags[i] = t.Tag(tagType)
	}
	if err := tagscheme.Convert(tags, scheme); err != nil {
		return err
	}
	for i, t := range s.tokens {
		t.AddTagLabel(tagType, tags[i])
	}
	return nil
}

// InferSpaceAfter guesses WhitespaceAfter for text that was tokenized without
// whitespace information (CoNLL-style corpora): no space before closing
// punctuation and clitics, after opening brackets, or inside quote pairs.
func (s *Sentence) InferSpaceAfter() *Sentence {
	var last *Token
	quotes := 0
	for _, t := range s.tokens {
		if t.Text == `"` {
			quotes++
			if quotes%2 != 0 {
				t.WhitespaceAfter = false
			} else if last != nil {
				last.WhitespaceAfter = false
			}
		}

		if last != nil {
			switch t.Text {
			case ".", ":", ",", ";", ")", "n't", "!", "?":
				last.WhitespaceAfter = false
			}
			if strings.HasPrefix(t.Text, "'") {
				last.WhitespaceAfter = false
			}
		}

		if t.Text == "(" {
			t.WhitespaceAfter = false
		}
		last = t
	}
	return s
}

// Copy returns a sentence with fresh tokens carrying the same texts and tags.
// Offsets, heads, labels and embeddings are not copied.
func (s *Sentence) Copy() *Sentence {
	c := NewSentence()
	for _, t := range s.tokens {
		nt := NewToken(t.Text)
		for _, tagType := range t.tagOrder {
			tag := t.Tag(tagType)
			nt.AddTag(tagType, tag.Value, tag.Score())
		}
		c.AddToken(nt)
	}
	return c
}

func (s *Sentence) String() string {
	if len(s.labels) > 0 {
		return fmt.Sprintf("Sentence: %q - %d Tokens - Labels: %v", s.ToTokenizedString(), s.Len(), s.labels)
	}
	return fmt.Sprintf("Sentence: %q - %d Tokens", s.ToTokenizedString(), s.Len())
}
