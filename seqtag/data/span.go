package data

import (
	"fmt"
	"strconv"
	"strings"
)

// Span is a contiguous run of tokens of one sentence carrying an inferred tag.
// Spans are produced by GetSpans and are not modified afterwards.
type Span struct {
	tokens []*Token
	tag    string
	score  float64
}

// NewSpan creates a span over tokens, which are assumed to be contiguous.
func NewSpan(tokens []*Token, tag string, score float64) Span {
	return Span{tokens: tokens, tag: tag, score: score}
}

func (s Span) Tokens() []*Token {
	out := make([]*Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

func (s Span) Tag() string { return s.tag }

// Score is the mean confidence of the member tokens' tags.
func (s Span) Score() float64 { return s.score }

func (s Span) Len() int { return len(s.tokens) }

// StartPosition is the start offset of the first token.
func (s Span) StartPosition() (int, bool) {
	if len(s.tokens) == 0 {
		return 0, false
	}
	return s.tokens[0].StartPosition()
}

// EndPosition is the end offset of the last token.
func (s Span) EndPosition() (int, bool) {
	if len(s.tokens) == 0 {
		return 0, false
	}
	return s.tokens[len(s.tokens)-1].EndPosition()
}

// Text joins the token texts with single spaces.
func (s Span) Text() string {
	texts := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		texts[i] = t.Text
	}
	return strings.Join(texts, " ")
}

// OriginalText rebuilds the covered text, restoring the gaps between tokens from
// their offsets.
func (s Span) OriginalText() string {
	if len(s.tokens) == 0 {
		return ""
	}
	start, _ := s.tokens[0].StartPosition()
	return originalText(s.tokens, start)
}

// SpanDict is the serialized form of a span.
type SpanDict struct {
	Text       string  `json:"text"`
	StartPos   *int    `json:"start_pos"`
	EndPos     *int    `json:"end_pos"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

func (s Span) ToDict() SpanDict {
	d := SpanDict{
		Text:       s.OriginalText(),
		Type:       s.tag,
		Confidence: s.score,
	}
	if start, ok := s.StartPosition(); ok {
		d.StartPos = &start
	}
	if end, ok := s.EndPosition(); ok {
		d.EndPos = &end
	}
	return d
}

func (s Span) String() string {
	ids := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		ids[i] = strconv.Itoa(t.Idx)
	}
	if s.tag != "" {
		return fmt.Sprintf("%s-span [%s]: %q", s.tag, strings.Join(ids, ","), s.Text())
	}
	return fmt.Sprintf("span [%s]: %q", strings.Join(ids, ","), s.Text())
}

// originalText lays tokens out from offset pos, padding with spaces up to each
// token's start. Tokens without offsets follow the previous token, separated by a
// space when it has WhitespaceAfter.
func originalText(tokens []*Token, pos int) string {
	var b strings.Builder
	for i, t := range tokens {
		start, ok := t.StartPosition()
		if !ok {
			if i > 0 && tokens[i-1].WhitespaceAfter {
				b.WriteByte(' ')
				pos++
			}
			start = pos
		}
		for pos < start {
			b.WriteByte(' ')
			pos++
		}
		b.WriteString(t.Text)
		pos = start + len([]rune(t.Text))
	}
	return b.String()
}
