package models

import (
	"encoding/json"
	"testing"
)

func TestDescriptionUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain string", `"Intro to algorithms"`, "Intro to algorithms"},
		{"object with description field", `{"description":"From the object"}`, "From the object"},
		{"object with text field", `{"text":"Legacy shape"}`, "Legacy shape"},
		{"description field wins over text", `{"description":"first","text":"second"}`, "first"},
		{"object with neither field", `{"body":"nope"}`, ""},
		{"null", `null`, ""},
		{"number", `42`, ""},
		{"array", `["a","b"]`, ""},
		{"object with non-string description", `{"description":{"nested":true}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Description
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.in, err)
			}
			if d.String() != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, d, tt.want)
			}
		})
	}
}

func TestDescriptionMarshalIsCanonical(t *testing.T) {
	var d Description
	if err := json.Unmarshal([]byte(`{"text":"hello"}`), &d); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"hello"` {
		t.Errorf("Marshal = %s, want %q", out, `"hello"`)
	}
}

func TestCourseJSONRoundTripsLegacyDescription(t *testing.T) {
	raw := `{"id":"c1","title":"DB","description":{"description":"Relational databases"},"is_active":true,"created_at":"2026-01-01T00:00:00Z"}`
	var course Course
	if err := json.Unmarshal([]byte(raw), &course); err != nil {
		t.Fatalf("Unmarshal course: %v", err)
	}
	if course.Description.String() != "Relational databases" {
		t.Errorf("Description = %q, want %q", course.Description, "Relational databases")
	}
}
