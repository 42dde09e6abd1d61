package multisite

import (
	"bytes"
	"strings"
	"testing"
)

func TestSuggestions(t *testing.T) {
	tests := []struct {
		choice string
		want   int
	}{
		{"A", 4},
		{"B", 4},
		{"C", 4},
		{"a", 4}, // case-insensitive
		{" b ", 4},
		{"Z", 0},
		{"", 0},
		{"AB", 0},
	}
	for _, tt := range tests {
		got := Suggestions(tt.choice)
		if len(got) != tt.want {
			t.Errorf("Suggestions(%q) = %d hosts, want %d", tt.choice, len(got), tt.want)
		}
	}
}

func TestSuggestions_LocalHosts(t *testing.T) {
	want := []string{"blog.local", "docs.local", "landing.local", "sandbox.local"}
	got := Suggestions("A")
	if len(got) != len(want) {
		t.Fatalf("Suggestions(\"A\") = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Suggestions(\"A\")[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderMenus(t *testing.T) {
	var buf bytes.Buffer
	RenderMenus(&buf)
	out := buf.String()

	for _, want := range []string{"1)", "5)", "A)", "B)", "C)", "Blog network", "Setup methods:"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu output missing %q", want)
		}
	}
}

func TestRenderSuggestions_Matched(t *testing.T) {
	var buf bytes.Buffer
	RenderSuggestions(&buf, "C")
	out := buf.String()

	if !strings.Contains(out, "staging-blog.example.com") {
		t.Error("output missing staging hostnames")
	}
	if !strings.Contains(out, "wppub connect") {
		t.Error("output missing next-step instructions")
	}
}

func TestRenderSuggestions_Unmatched(t *testing.T) {
	var buf bytes.Buffer
	RenderSuggestions(&buf, "Z")
	out := buf.String()

	if strings.Contains(out, ".local") || strings.Contains(out, "example.com") {
		t.Errorf("unmatched choice printed a site list: %q", out)
	}
	if !strings.Contains(out, "No suggestions") {
		t.Error("unmatched choice should print a hint line")
	}
}
