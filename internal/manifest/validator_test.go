package manifest

import (
	"testing"
)

func TestValidateBuiltManifest(t *testing.T) {
	data, err := Build("demo-app").Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("built manifest should validate, issues: %v", result.Issues)
	}
}

func TestValidateRejectsBadManifest(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing version", `{"name": "app"}`},
		{"bad name casing", `{"name": "My App", "version": "1.0.0"}`},
		{"non-string script", `{"name": "app", "version": "1.0.0", "scripts": {"lint": 42}}`},
		{"bad version", `{"name": "app", "version": "one"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Error("expected validation failure")
			}
			if len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{"name":`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
