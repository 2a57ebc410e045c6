package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestResolveAnswer(t *testing.T) {
	cases := []struct {
		name         string
		questionType string
		raw          string
		want         AnswerValue
	}{
		{
			"multiple choice array",
			QuestionTypeMultipleChoice, `["In-person","Online"]`,
			AnswerValue{Kind: AnswerList, List: []string{"In-person", "Online"}},
		},
		{
			"multiple choice with non-array payload falls back to text",
			QuestionTypeMultipleChoice, `"In-person"`,
			AnswerValue{Kind: AnswerText, Text: "In-person"},
		},
		{
			"rating number",
			QuestionTypeRating, `4`,
			AnswerValue{Kind: AnswerScalar, Scalar: 4},
		},
		{
			"rating as quoted string",
			QuestionTypeRating, `" 5 "`,
			AnswerValue{Kind: AnswerScalar, Scalar: 5},
		},
		{
			"rating with non-numeric payload falls back to text",
			QuestionTypeRating, `"excellent"`,
			AnswerValue{Kind: AnswerText, Text: "excellent"},
		},
		{
			"free text",
			QuestionTypeText, `"Loved the keynote"`,
			AnswerValue{Kind: AnswerText, Text: "Loved the keynote"},
		},
		{
			"unparseable payload kept verbatim",
			QuestionTypeText, `{"weird":true}`,
			AnswerValue{Kind: AnswerText, Text: `{"weird":true}`},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveAnswer(tc.questionType, json.RawMessage(tc.raw))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAnswerKeys(t *testing.T) {
	cases := []struct {
		name   string
		answer AnswerValue
		want   []string
	}{
		{"list contributes every selection", AnswerValue{Kind: AnswerList, List: []string{"A", "B"}}, []string{"A", "B"}},
		{"scalar formats without trailing zeros", AnswerValue{Kind: AnswerScalar, Scalar: 4}, []string{"4"}},
		{"text strips stray quotes", AnswerValue{Kind: AnswerText, Text: `"Yes"`}, []string{"Yes"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.answer.Keys(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAnswerDisplay(t *testing.T) {
	list := AnswerValue{Kind: AnswerList, List: []string{"Music", "Theatre"}}
	if got := list.Display(); got != "Music; Theatre" {
		t.Errorf("list: got %q", got)
	}
	scalar := AnswerValue{Kind: AnswerScalar, Scalar: 4.5}
	if got := scalar.Display(); got != "4.5" {
		t.Errorf("scalar: got %q", got)
	}
}

func TestAnswerValueRoundtripsThroughScan(t *testing.T) {
	original := AnswerValue{Kind: AnswerList, List: []string{"A", "B"}}
	stored, err := original.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var loaded AnswerValue
	if err := loaded.Scan(stored); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("got %+v, want %+v", loaded, original)
	}
}
