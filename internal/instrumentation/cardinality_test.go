package instrumentation

import "testing"

func TestQueryKind(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{"from:jane@example.com", "from"},
		{"FROM:jane@example.com", "from"},
		{"tag:unread and tag:new", "tag"},
		{"thread:0000000000001f00", "thread"},
		{"subject:\"refcount leak\"", "subject"},
		{"date:2024-05-01..2024-06-01", "date"},
		{"refcount leak", "freeform"},
		{"somethingelse:value", "freeform"},
		{":leading-colon", "freeform"},
		{"  from:jane@example.com  ", "from"},
		{"", "unknown"},
		{"   ", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result := QueryKind(tt.query)
			if result != tt.expected {
				t.Errorf("QueryKind(%q) = %q, want %q", tt.query, result, tt.expected)
			}
		})
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationSearch: "search",
		OperationShow:   "show",
		OperationRead:   "read",
	}

	for constant, expected := range operations {
		if constant != expected {
			t.Errorf("Operation constant = %q, want %q", constant, expected)
		}
	}
}
