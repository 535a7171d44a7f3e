package corpus

import (
	"fmt"

	internal "github.com/ZanzyTHEbar/seqtag/seqtag"
	"github.com/ZanzyTHEbar/seqtag/seqtag/dictionary"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Corpus is a named collection of train, dev and test sentences.
type Corpus interface {
	Name() string
	Train() Source
	Dev() Source
	Test() Source
	// All chains train, dev and test.
	All() Source
	// Downsample keeps roughly proportion of each split (only train when
	// onlyTrain is set) and returns the receiver.
	Downsample(proportion float64, onlyTrain bool) Corpus
	MakeTagDictionary(tagType string) *dictionary.Dictionary
	MakeLabelDictionary() *dictionary.Dictionary
	MakeVocabDictionary(maxTokens, minFreq int) *dictionary.Dictionary
}

type options struct {
	name   string
	logger zerolog.Logger
}

// Option configures a corpus.
type Option func(*options)

func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(opts []Option) options {
	o := options{name: internal.DefaultCorpusName, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Tagged is a corpus over three sources. It is not safe for concurrent use while
// Downsample runs.
type Tagged struct {
	id     uuid.UUID
	name   string
	train  Source
	dev    Source
	test   Source
	logger zerolog.Logger
}

var _ Corpus = (*Tagged)(nil)

// NewTagged creates a corpus from its splits. Nil splits are empty.
func NewTagged(train, dev, test Source, opts ...Option) *Tagged {
	o := buildOptions(opts)
	c := &Tagged{
		id:    uuid.New(),
		name:  o.name,
		train: orEmpty(train),
		dev:   orEmpty(dev),
		test:  orEmpty(test),
	}
	c.logger = o.logger.With().Str("corpus", c.name).Str("corpus_id", c.id.String()).Logger()
	return c
}

func (c *Tagged) ID() uuid.UUID { return c.id }
func (c *Tagged) Name() string { return c.name }
func (c *Tagged) Train() Source { return c.train }
func (c *Tagged) Dev() Source { return c.dev }
func (c *Tagged) Test() Source { return c.test }

func (c *Tagged) All() Source {
	return Concat(c.train, c.dev, c.test)
}

func (c *Tagged) Downsample(proportion float64, onlyTrain bool) Corpus {
	c.train = c.downsampleSplit("train", c.train, proportion)
	if !onlyTrain {
		c.dev = c.downsampleSplit("dev", c.dev, proportion)
		c.test = c.downsampleSplit("test", c.test, proportion)
	}
	return c
}

func (c *Tagged) downsampleSplit(split string, src Source, proportion float64) Source {
	out := Downsample(src, proportion)
	c.logger.Debug().
		Str("split", split).
		Float64("proportion", proportion).
		Int("sentences", len(out)).
		Msg("downsampled split")
	return out
}

func (c *Tagged) MakeTagDictionary(tagType string) *dictionary.Dictionary {
	d := TagDictionary(c.All(), tagType)
	c.logger.Debug().Str("tag_type", tagType).Int("items", d.Len()).Msg("built tag dictionary")
	return d
}

func (c *Tagged) MakeLabelDictionary() *dictionary.Dictionary {
	d := LabelDictionary(c.All())
	c.logger.Debug().Int("items", d.Len()).Msg("built label dictionary")
	return d
}

func (c *Tagged) MakeVocabDictionary(maxTokens, minFreq int) *dictionary.Dictionary {
	d := VocabDictionary(c.train, maxTokens, minFreq)
	c.logger.Debug().
		Int("max_tokens", maxTokens).
		Int("min_freq", minFreq).
		Int("items", d.Len()).
		Msg("built vocab dictionary")
	return d
}

func (c *Tagged) String() string {
	return fmt.Sprintf("TaggedCorpus: %d train + %d dev + %d test sentences",
		Count(c.train), Count(c.dev), Count(c.test))
}
