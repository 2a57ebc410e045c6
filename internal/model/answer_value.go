package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerKind tags the shape of a stored answer payload.
type AnswerKind string

const (
	AnswerText   AnswerKind = "text"
	AnswerScalar AnswerKind = "scalar"
	AnswerList   AnswerKind = "list"
)

// AnswerValue is the tagged variant stored in Response.Answer. The shape is
// resolved once at intake from the question type, so aggregation code never
// has to re-sniff raw JSON.
type AnswerValue struct {
	Kind   AnswerKind `json:"kind"`
	Text   string     `json:"text,omitempty"`
	Scalar float64    `json:"scalar,omitempty"`
	List   []string   `json:"list,omitempty"`
}

// ResolveAnswer converts a raw submitted payload into the variant matching the
// question type. Payloads that do not match the expected shape fall back to
// text so a submission never fails on a malformed answer.
func ResolveAnswer(questionType string, raw json.RawMessage) AnswerValue {
	switch questionType {
	case QuestionTypeMultipleChoice:
		var items []string
		if err := json.Unmarshal(raw, &items); err == nil {
			return AnswerValue{Kind: AnswerList, List: items}
		}
	case QuestionTypeRating:
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return AnswerValue{Kind: AnswerScalar, Scalar: n}
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return AnswerValue{Kind: AnswerScalar, Scalar: n}
			}
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return AnswerValue{Kind: AnswerText, Text: s}
	}
	// Last resort: keep the raw JSON as text rather than dropping the answer.
	return AnswerValue{Kind: AnswerText, Text: string(raw)}
}

// TextValue returns the free-text payload, if this answer carries one.
func (a AnswerValue) TextValue() (string, bool) {
	if a.Kind == AnswerText {
		return a.Text, true
	}
	return "", false
}

// ScalarValue returns the numeric payload, if this answer carries one.
func (a AnswerValue) ScalarValue() (float64, bool) {
	if a.Kind == AnswerScalar {
		return a.Scalar, true
	}
	return 0, false
}

// Keys returns the grouping keys this answer contributes to a categorical
// breakdown. A list answer contributes one key per selected option.
func (a AnswerValue) Keys() []string {
	switch a.Kind {
	case AnswerList:
		return a.List
	case AnswerScalar:
		return []string{strconv.FormatFloat(a.Scalar, 'f', -1, 64)}
	default:
		return []string{strings.Trim(a.Text, `"`)}
	}
}

// Display renders the answer for exports and raw listings.
func (a AnswerValue) Display() string {
	switch a.Kind {
	case AnswerList:
		return strings.Join(a.List, "; ")
	case AnswerScalar:
		return strconv.FormatFloat(a.Scalar, 'f', -1, 64)
	default:
		return a.Text
	}
}

func (a AnswerValue) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnswerValue) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = AnswerValue{}
		return nil
	default:
		return fmt.Errorf("unsupported answer value type %T", value)
	}
}

// StringList stores an ordered list of strings as JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported options value type %T", value)
	}
}
