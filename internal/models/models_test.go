package models

import "testing"

func intPtr(n int) *int { return &n }

func TestSuggestionRequestCount(t *testing.T) {
	cases := []struct {
		name string
		n    *int
		want int
	}{
		{"absent defaults", nil, DefaultSuggestionCount},
		{"below range", intPtr(-3), 1},
		{"zero", intPtr(0), 1},
		{"in range", intPtr(5), 5},
		{"upper bound", intPtr(8), 8},
		{"above range", intPtr(100), MaxSuggestionCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := SuggestionRequest{N: tc.n}
			if got := req.Count(); got != tc.want {
				t.Fatalf("Count() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWorldEventField(t *testing.T) {
	ev := WorldEvent{"t": "黎明", "title": "", "severity": 2, "flag": nil}

	if got := ev.Field("t", "?"); got != "黎明" {
		t.Fatalf("expected stored value, got %q", got)
	}
	if got := ev.Field("title", "?"); got != "" {
		t.Fatalf("expected present empty value kept, got %q", got)
	}
	if got := ev.Field("desc", "?"); got != "?" {
		t.Fatalf("expected fallback for missing key, got %q", got)
	}
	if got := ev.Field("flag", "?"); got != "?" {
		t.Fatalf("expected fallback for nil value, got %q", got)
	}
	if got := ev.Field("severity", "?"); got != "2" {
		t.Fatalf("expected non-string rendered as string, got %q", got)
	}
}
