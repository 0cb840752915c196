// Package types provides the value types shared by the quiz scoring, plan generation and report layers.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Answer is a single raw quiz answer as submitted by a client.
// Value holds whatever the JSON decoder produced: a number, a string, a list of strings or null.
type Answer struct {
	QuestionID int `json:"question_id"`
	Value      any `json:"value"`
}

// LikertAnswer is a scored answer on the 1..5 agreement scale.
type LikertAnswer struct {
	ID    int `json:"id"`
	Value int `json:"value"`
}

// ValueKind identifies which field of an AnswerValue is populated.
type ValueKind int

// Answer value kinds
const (
	KindNumber ValueKind = iota + 1
	KindText
	KindList
)

// AnswerValue is a typed answer value.
type AnswerValue struct {
	Kind   ValueKind
	Number float64
	Text   string
	List   []string
}

// NumberValue builds a numeric AnswerValue.
func NumberValue(n float64) AnswerValue {
	return AnswerValue{Kind: KindNumber, Number: n}
}

// TextValue builds a string AnswerValue.
func TextValue(s string) AnswerValue {
	return AnswerValue{Kind: KindText, Text: s}
}

// ListValue builds a string-list AnswerValue. The slice is copied.
func ListValue(items []string) AnswerValue {
	return AnswerValue{Kind: KindList, List: append([]string(nil), items...)}
}

// AnswerMap maps a question identifier to its answer. Null answers are never stored.
type AnswerMap map[int]AnswerValue

// Number returns the numeric answer for id, if one exists.
func (m AnswerMap) Number(id int) (float64, bool) {
	v, ok := m[id]
	if !ok || v.Kind != KindNumber {
		return 0, false
	}
	return v.Number, true
}

// Text returns the string answer for id, if one exists.
func (m AnswerMap) Text(id int) (string, bool) {
	v, ok := m[id]
	if !ok || v.Kind != KindText {
		return "", false
	}
	return v.Text, true
}

// List returns the list answer for id. A single string answer is returned as a one-element list.
func (m AnswerMap) List(id int) []string {
	v, ok := m[id]
	if !ok {
		return nil
	}
	switch v.Kind {
	case KindList:
		return append([]string(nil), v.List...)
	case KindText:
		return []string{v.Text}
	default:
		return nil
	}
}
