package registry

import "testing"

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PascalCase", "pascal_case"},
		{"camelCase", "camel_case"},
		{"HTTPSConnection", "https_connection"},
		{"ID", "id"},
		{"UserID", "user_id"},
		{"APIKey", "api_key"},
		{"already_snake", "already_snake"},
		{"", ""},
		{"A", "a"},
		{"ABCDef", "abc_def"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToSnakeCase(tt.input)
			if result != tt.expected {
				t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
