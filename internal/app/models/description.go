package models

import "encoding/json"

// Description is the course description as stored by the backend. Historically
// the column is jsonb and older writers stored an object with a "description"
// or "text" field instead of a plain string, so unmarshalling accepts all of
// those shapes and normalizes to a single string. The union never leaves this
// type: everywhere else a Description behaves as a plain string.
type Description string

// UnmarshalJSON accepts a JSON string, an object with a "description" or
// "text" field, or null/anything else (which normalize to the empty string).
func (d *Description) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Description(s)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		for _, key := range []string{"description", "text"} {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			var v string
			if err := json.Unmarshal(raw, &v); err == nil {
				*d = Description(v)
				return nil
			}
		}
	}

	// null, arrays, numbers and other legacy garbage normalize to empty.
	*d = ""
	return nil
}

// MarshalJSON always emits the canonical string form.
func (d Description) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

func (d Description) String() string {
	return string(d)
}
