package pkg

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Backend Engineer", "backend-engineer"},
		{"Sr. Engineer (Platform)", "sr-engineer-platform"},
		{"  QA   Lead  ", "qa-lead"},
		{"!!!", "untitled-role"},
		{"", "untitled-role"},
	}

	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
