package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerSheet maps a 0-based question position to the selected option index.
// Unattempted questions are absent keys, never explicit zero values, so the
// marking pass can tell "skipped" apart from "picked option 0".
type AnswerSheet map[int]int

// Value serializes the sheet to JSON for storage in a jsonb column.
func (a AnswerSheet) Value() (driver.Value, error) {
	if a == nil {
		a = AnswerSheet{}
	}
	return json.Marshal(a)
}

// Scan decodes a stored sheet. Malformed rows decode to an empty sheet rather
// than failing the whole read, so score arithmetic downstream always operates
// on well-formed numbers.
func (a *AnswerSheet) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerSheet{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AnswerSheet", value)
	}
	sheet := AnswerSheet{}
	if err := json.Unmarshal(raw, &sheet); err != nil {
		*a = AnswerSheet{}
		return nil
	}
	*a = sheet
	return nil
}

// Attempted reports whether the question at position i was answered.
func (a AnswerSheet) Attempted(i int) bool {
	_, ok := a[i]
	return ok
}
