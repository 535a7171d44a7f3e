package corpus

import "encoding/json"

// Report describes each split of a corpus.
type Report struct {
	Train SplitStatistics `json:"TRAIN"`
	Test  SplitStatistics `json:"TEST"`
	Dev   SplitStatistics `json:"DEV"`
}

// SplitStatistics describes one split. An empty split serializes as {}.
type SplitStatistics struct {
	Dataset           string         `json:"dataset"`
	TotalDocuments    int            `json:"total_number_of_documents"`
	DocumentsPerClass map[string]int `json:"number_of_documents_per_class"`
	TokensPerTag      map[string]int `json:"number_of_tokens_per_tag"`
	Tokens            TokenCounts    `json:"number_of_tokens"`
}

// TokenCounts summarizes sentence lengths in tokens.
type TokenCounts struct {
	Total int     `json:"total"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Avg   float64 `json:"avg"`
}

type splitStatisticsJSON SplitStatistics

func (s SplitStatistics) MarshalJSON() ([]byte, error) {
	if s.TotalDocuments == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(splitStatisticsJSON(s))
}

// Statistics reports class distribution and sentence sizes for every split of c.
// Classes are counted per label occurrence, so a sentence repeating a label counts
// it twice. Tokens are counted per value of tagType; tokens without that tag are
// skipped.
func Statistics(c Corpus, tagType string) Report {
	return Report{
		Train: SplitStatisticsFor(c.Train(), "TRAIN", tagType),
		Test:  SplitStatisticsFor(c.Test(), "TEST", tagType),
		Dev:   SplitStatisticsFor(c.Dev(), "DEV", tagType),
	}
}

// SplitStatisticsFor computes the statistics of a single split named name.
func SplitStatisticsFor(src Source, name, tagType string) SplitStatistics {
	sentences := Collect(src)
	if len(sentences) == 0 {
		return SplitStatistics{}
	}

	stats := SplitStatistics{
		Dataset:           name,
		TotalDocuments:    len(sentences),
		DocumentsPerClass: make(map[string]int),
		TokensPerTag:      make(map[string]int),
	}
	for i, s := range sentences {
		n := s.Len()
		stats.Tokens.Total += n
		if i == 0 || n < stats.Tokens.Min {
			stats.Tokens.Min = n
		}
		if n > stats.Tokens.Max {
			stats.Tokens.Max = n
		}
		for _, l := range s.Labels() {
			stats.DocumentsPerClass[l.Value]++
		}
		for _, t := range s.Tokens() {
			if t.HasTag(tagType) {
				stats.TokensPerTag[t.Tag(tagType).Value]++
			}
		}
	}
	stats.Tokens.Avg = float64(stats.Tokens.Total) / float64(len(sentences))
	return stats
}

// JSON pretty prints the report with four-space indentation.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
