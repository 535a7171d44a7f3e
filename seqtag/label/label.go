package label

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ZanzyTHEbar/seqtag/seqtag/common"
)

// DefaultScore is assigned when no score is given or the given score is outside [0, 1].
const DefaultScore = 1.0

// Label is a value with a confidence score. The score is always in [0, 1].
type Label struct {
	Value string
	score float64
}

// New creates a label. Scores outside [0, 1] are replaced by DefaultScore.
func New(value string, score float64) Label {
	l := Label{Value: value}
	l.SetScore(score)
	return l
}

// FromPtr creates a label from an optional value. A nil value is rejected;
// the empty string is a valid value.
func FromPtr(value *string, score float64) (Label, error) {
	if value == nil {
		return Label{}, common.Validationf("label value needs to be set")
	}
	return New(*value, score), nil
}

// Score returns the confidence score.
func (l Label) Score() float64 { return l.score }

// SetScore stores score, or DefaultScore when score is not within [0, 1].
func (l *Label) SetScore(score float64) {
	if score >= 0.0 && score <= 1.0 && !math.IsNaN(score) {
		l.score = score
		return
	}
	l.score = DefaultScore
}

func (l Label) String() string {
	return fmt.Sprintf("%s (%v)", l.Value, l.score)
}

type labelJSON struct {
	Value      *string  `json:"value"`
	Confidence *float64 `json:"confidence,omitempty"`
}

func (l Label) MarshalJSON() ([]byte, error) {
	v := l.Value
	s := l.score
	return json.Marshal(labelJSON{Value: &v, Confidence: &s})
}

// UnmarshalJSON rejects a missing or null value. A missing confidence means DefaultScore.
func (l *Label) UnmarshalJSON(data []byte) error {
	var raw labelJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	score := DefaultScore
	if raw.Confidence != nil {
		score = *raw.Confidence
	}
	parsed, err := FromPtr(raw.Value, score)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
