package s3

import (
	"context"
	"testing"
)

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), "us-east-1", "", "exports"); err == nil {
		t.Fatal("expected error for empty bucket")
	}
}

func TestNormalizePrefix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"exports", "exports/"},
		{"/exports/", "exports/"},
		{"a/b", "a/b/"},
	}
	for _, tc := range cases {
		if got := normalizePrefix(tc.in); got != tc.want {
			t.Fatalf("normalizePrefix(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
