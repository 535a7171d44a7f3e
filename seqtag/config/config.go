package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/seqtag/seqtag"
	"github.com/ZanzyTHEbar/seqtag/seqtag/corpus"
	"github.com/ZanzyTHEbar/seqtag/seqtag/data"
	"github.com/ZanzyTHEbar/seqtag/seqtag/dictionary"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Seqtag SeqtagConfig `mapstructure:"seqtag"`
}

// SeqtagConfig groups the settings of each component.
type SeqtagConfig struct {
	LogLevel   string           `mapstructure:"logLevel"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Spans      SpansConfig      `mapstructure:"spans"`
	Corpus     CorpusConfig     `mapstructure:"corpus"`
}

// DictionaryConfig stores dictionary creation and snapshot settings.
type DictionaryConfig struct {
	AddUnk      bool   `mapstructure:"addUnk"`
	SnapshotDir string `mapstructure:"snapshotDir"`
}

// SpansConfig stores span decoding settings.
type SpansConfig struct {
	TagType  string  `mapstructure:"tagType"`
	MinScore float64 `mapstructure:"minScore"`
}

// CorpusConfig stores corpus assembly settings.
type CorpusConfig struct {
	Name                string      `mapstructure:"name"`
	Workers             int         `mapstructure:"workers"`
	Downsample          float64     `mapstructure:"downsample"`
	OnlyDownsampleTrain bool        `mapstructure:"onlyDownsampleTrain"`
	Vocab               VocabConfig `mapstructure:"vocab"`
}

// VocabConfig limits vocabulary dictionaries. -1 disables a limit.
type VocabConfig struct {
	MaxTokens int `mapstructure:"maxTokens"`
	MinFreq   int `mapstructure:"minFreq"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName(internal.DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	v.SetDefault("seqtag.logLevel", "info")
	v.SetDefault("seqtag.dictionary.addUnk", true)
	v.SetDefault("seqtag.dictionary.snapshotDir", internal.DefaultSnapshotDir)
	v.SetDefault("seqtag.spans.tagType", internal.DefaultTagType)
	v.SetDefault("seqtag.spans.minScore", internal.DefaultMinScore)
	v.SetDefault("seqtag.corpus.name", internal.DefaultCorpusName)
	v.SetDefault("seqtag.corpus.workers", 0)
	v.SetDefault("seqtag.corpus.downsample", 0.1)
	v.SetDefault("seqtag.corpus.onlyDownsampleTrain", false)
	v.SetDefault("seqtag.corpus.vocab.maxTokens", -1)
	v.SetDefault("seqtag.corpus.vocab.minFreq", 1)

	v.AutomaticEnv()                                   // Read in environment variables that match
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // seqtag.spans.minScore becomes SEQTAG_SPANS_MINSCORE

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	AppConfig = cfg

	return &cfg, nil
}

// Logger returns the application logger at the configured level. Unknown levels
// fall back to info.
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Seqtag.LogLevel)
	if err != nil || c.Seqtag.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	return internal.GetLogger().Level(level)
}

// SpanOptions translates the span settings into GetSpans options.
func (c *Config) SpanOptions() []data.SpanOption {
	return []data.SpanOption{data.WithMinScore(c.Seqtag.Spans.MinScore)}
}

// CorpusOptions translates the corpus settings into corpus options.
func (c *Config) CorpusOptions(logger zerolog.Logger) []corpus.Option {
	return []corpus.Option{
		corpus.WithName(c.Seqtag.Corpus.Name),
		corpus.WithLogger(logger),
	}
}

// NewDictionary creates an empty dictionary honoring addUnk.
func (c *Config) NewDictionary() *dictionary.Dictionary {
	return dictionary.New(c.Seqtag.Dictionary.AddUnk)
}

// SnapshotPath is the file a dictionary named name is saved to.
func (c *Config) SnapshotPath(name string) string {
	return filepath.Join(c.Seqtag.Dictionary.SnapshotDir, name+".dict")
}

// Downsample applies the configured proportion to cp.
func (c *Config) Downsample(cp corpus.Corpus) corpus.Corpus {
	return cp.Downsample(c.Seqtag.Corpus.Downsample, c.Seqtag.Corpus.OnlyDownsampleTrain)
}

// VocabDictionary builds the vocabulary of cp within the configured limits.
func (c *Config) VocabDictionary(cp corpus.Corpus) *dictionary.Dictionary {
	return cp.MakeVocabDictionary(c.Seqtag.Corpus.Vocab.MaxTokens, c.Seqtag.Corpus.Vocab.MinFreq)
}
