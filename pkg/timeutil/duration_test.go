package timeutil

import (
	"testing"
	"time"
)

func TestParseSpan(t *testing.T) {
	tests := []struct {
		in   string
		want Span
		str  string
	}{
		{"2-3 hours", Span{Min: 2 * time.Hour, Max: 3 * time.Hour}, "2h-3h"},
		{"6+ hours", Span{Min: 6 * time.Hour, Max: 6 * time.Hour, Open: true}, "6h+"},
		{"45 min", Span{Min: 45 * time.Minute, Max: 45 * time.Minute}, "45m"},
		{"1 hour", Span{Min: time.Hour, Max: time.Hour}, "1h"},
		{"1h30m", Span{Min: 90 * time.Minute, Max: 90 * time.Minute}, "1h30m"},
		{" 1 - 2 Hrs ", Span{Min: time.Hour, Max: 2 * time.Hour}, "1h-2h"},
	}
	for _, tt := range tests {
		got, err := ParseSpan(tt.in)
		if err != nil {
			t.Fatalf("ParseSpan(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSpan(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.str {
			t.Fatalf("ParseSpan(%q).String() = %q, want %q", tt.in, got.String(), tt.str)
		}
	}
}

func TestParseSpanInvalid(t *testing.T) {
	for _, in := range []string{"", "flexible", "3-2 hours", "0 hours", "2 fortnights"} {
		if _, err := ParseSpan(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestSpanAdd(t *testing.T) {
	a, _ := ParseSpan("1-2 hours")
	b, _ := ParseSpan("6+ hours")
	sum := Span{}.Add(a).Add(b)
	if got := sum.String(); got != "7h-8h+" {
		t.Fatalf("unexpected sum %q", got)
	}
	if !(Span{}).IsZero() || sum.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}
