package aesthetic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrAnswersNotObject is returned when the submitted answers are not a JSON object.
var ErrAnswersNotObject = errors.New("answers must be a JSON object")

// Answer is a single question's answer, keyed by question id.
type Answer struct {
	QuestionID string
	Raw        json.RawMessage

	// Text and Aesthetic are only set when Raw is an object carrying
	// string fields of those names.
	Text      string
	Aesthetic string
}

// Answers keeps quiz answers in the order they appeared in the request body.
type Answers []Answer

// ParseAnswers decodes a JSON object of answers, preserving key order.
// A repeated key keeps its first position and takes the last value.
func ParseAnswers(data []byte) (Answers, error) {
	var a Answers
	if err := a.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return a, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Answers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode answers: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrAnswersNotObject
	}

	out := Answers{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode answers: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode answer %q: %w", key, err)
		}

		answer := newAnswer(key, raw)
		if i, seen := index[key]; seen {
			out[i] = answer
			continue
		}
		index[key] = len(out)
		out = append(out, answer)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode answers: %w", err)
	}

	*a = out
	return nil
}

// MarshalJSON writes the answers back as an object in their original order.
func (a Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, answer := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(answer.QuestionID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(answer.Raw) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(answer.Raw)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Texts returns the non-empty answer texts in order.
func (a Answers) Texts() []string {
	texts := make([]string, 0, len(a))
	for _, answer := range a {
		if answer.Text != "" {
			texts = append(texts, answer.Text)
		}
	}
	return texts
}

func newAnswer(key string, raw json.RawMessage) Answer {
	answer := Answer{QuestionID: key, Raw: raw}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return answer
	}

	// Field names are matched exactly, unlike struct decoding.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return answer
	}
	answer.Text = stringField(fields["text"])
	answer.Aesthetic = stringField(fields["aesthetic"])
	return answer
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
