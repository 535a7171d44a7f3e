package data

import (
	"fmt"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/seqtag/seqtag/embedding"
	"github.com/ZanzyTHEbar/seqtag/seqtag/label"

	"gonum.org/v1/gonum/mat"
)

// Token is one word of a sentence. Idx is its 1-based position in the owning
// sentence (0 until it is added), HeadID the Idx of its dependency head (0 for none).
type Token struct {
	Text            string
	Idx             int
	HeadID          int
	WhitespaceAfter bool

	startPos int
	endPos   int
	hasPos   bool

	tags     map[string]label.Label
	tagOrder []string

	embeddings embedding.Store
}

// NewToken creates a token followed by whitespace and without position.
func NewToken(text string) *Token {
	return &Token{Text: text, WhitespaceAfter: true}
}

// NewTokenAt creates a token starting at the given character offset of the original text.
func NewTokenAt(text string, start int) *Token {
	t := NewToken(text)
	t.SetStartPosition(start)
	return t
}

// SetStartPosition sets the start character offset; the end offset follows from the text length.
func (t *Token) SetStartPosition(start int) {
	t.startPos = start
	t.endPos = start + utf8.RuneCountInString(t.Text)
	t.hasPos = true
}

// StartPosition returns the start character offset, if known.
func (t *Token) StartPosition() (int, bool) { return t.startPos, t.hasPos }

// EndPosition returns the exclusive end character offset, if known.
func (t *Token) EndPosition() (int, bool) { return t.endPos, t.hasPos }

// AddTag stores a label for tagType, replacing any previous one.
func (t *Token) AddTag(tagType, value string, score float64) {
	t.AddTagLabel(tagType, label.New(value, score))
}

// AddTagLabel stores l for tagType, replacing any previous one.
func (t *Token) AddTagLabel(tagType string, l label.Label) {
	if t.tags == nil {
		t.tags = make(map[string]label.Label)
	}
	if _, ok := t.tags[tagType]; !ok {
		t.tagOrder = append(t.tagOrder, tagType)
	}
	t.tags[tagType] = l
}

// Tag returns the label of tagType, or an empty-valued label when the token has none.
func (t *Token) Tag(tagType string) label.Label {
	if l, ok := t.tags[tagType]; ok {
		return l
	}
	return label.New("", label.DefaultScore)
}

// HasTag reports whether a label is stored for tagType.
func (t *Token) HasTag(tagType string) bool {
	_, ok := t.tags[tagType]
	return ok
}

// TagTypes returns the tag types of the token in the order they were first added.
func (t *Token) TagTypes() []string {
	out := make([]string, len(t.tagOrder))
	copy(out, t.tagOrder)
	return out
}

// Head resolves HeadID against the sentence that owns the token.
func (t *Token) Head(s *Sentence) (*Token, bool) {
	if t.HeadID == 0 || s == nil {
		return nil, false
	}
	return s.GetToken(t.HeadID)
}

// SetEmbedding attaches a named vector.
func (t *Token) SetEmbedding(name string, vec mat.Vector) {
	t.embeddings.Set(name, vec)
}

// ClearEmbeddings drops all attached vectors.
func (t *Token) ClearEmbeddings() {
	t.embeddings.Clear()
}

// Embedding concatenates all attached vectors ordered by name.
func (t *Token) Embedding() *mat.VecDense {
	return t.embeddings.Concat()
}

// EmbeddingNames lists the names of the attached vectors.
func (t *Token) EmbeddingNames() []string {
	return t.embeddings.Names()
}

func (t *Token) String() string {
	if t.Idx != 0 {
		return fmt.Sprintf("Token: %d %s", t.Idx, t.Text)
	}
	return fmt.Sprintf("Token: %s", t.Text)
}
