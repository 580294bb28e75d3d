package request

import (
	"bytes"
	"encoding/json"
)

// Text is a body field read as text. Strings keep their content and any
// other JSON value keeps its literal form, so "title": 123 reads as "123".
type Text string

// NewText returns a pointer to s as Text
func NewText(s string) *Text {
	t := Text(s)
	return &t
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return string(t)
}
