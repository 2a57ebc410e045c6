// Package sentiment classifies free-text survey answers into
// positive/neutral/negative buckets using a fixed polarity lexicon.
package sentiment

import (
	"math"
	"strings"
	"unicode"

	"github.com/mikeconel/windrush-insights/internal/model"
)

// Scores inside the deadband count as neutral. The band filters out
// weakly-worded feedback that would otherwise flip buckets on noise.
const deadband = 0.2

// Summary holds the three-way classification counts for one answer stream.
type Summary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total is the number of classified (text) answers.
func (s Summary) Total() int {
	return s.Positive + s.Neutral + s.Negative
}

// Percentages converts the counts to one-decimal percentages. An empty stream
// yields zero for all buckets, never a division fault.
func (s Summary) Percentages() (positive, neutral, negative float64) {
	total := s.Total()
	if total == 0 {
		return 0, 0, 0
	}
	return round1(float64(s.Positive) / float64(total) * 100),
		round1(float64(s.Neutral) / float64(total) * 100),
		round1(float64(s.Negative) / float64(total) * 100)
}

// Score computes a polarity in [-1, 1] for one text: the average weight of
// lexicon words found in it, with a preceding negation flipping the sign.
// Text with no lexicon words scores 0.
func Score(text string) float64 {
	words := tokenize(text)
	var sum float64
	var matched int
	negate := false
	for _, w := range words {
		if negations[w] {
			negate = true
			continue
		}
		if weight, ok := lexicon[w]; ok {
			if negate {
				weight = -weight
			}
			sum += weight
			matched++
		}
		negate = false
	}
	if matched == 0 {
		return 0
	}
	score := sum / float64(matched)
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

// Classify scores a stream of answers, silently skipping anything that is not
// free text.
func Classify(answers []model.AnswerValue) Summary {
	var s Summary
	for _, a := range answers {
		text, ok := a.TextValue()
		if !ok {
			continue
		}
		s.Add(Score(text))
	}
	return s
}

// Add buckets one polarity score into the summary.
func (s *Summary) Add(polarity float64) {
	switch {
	case polarity > deadband:
		s.Positive++
	case polarity < -deadband:
		s.Negative++
	default:
		s.Neutral++
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
