package staleness

import (
	"testing"
	"time"

	"github.com/example/dormant/internal/core/roster"
)

func TestWindow_Cutoff(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		now    time.Time
		want   time.Time
	}{
		{
			name:   "plain three months",
			window: Window{Months: 3},
			now:    time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC),
			want:   time.Date(2026, time.July, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:   "clamps to end of february",
			window: Window{Months: 3},
			now:    time.Date(2026, time.May, 31, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "clamps to leap day",
			window: Window{Months: 3},
			now:    time.Date(2028, time.May, 31, 12, 0, 0, 0, time.UTC),
			want:   time.Date(2028, time.February, 29, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "crosses year boundary",
			window: Window{Months: 3},
			now:    time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "days only",
			window: Window{Days: 90},
			now:    time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "months then days",
			window: Window{Months: 1, Days: 1},
			now:    time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "more than a year",
			window: Window{Months: 14},
			now:    time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.window.Cutoff(tt.now)
			if got != tt.want.UnixMilli() {
				t.Errorf("Cutoff = %s, want %s", time.UnixMilli(got).UTC(), tt.want)
			}
		})
	}
}

func TestWindow_Validate(t *testing.T) {
	if err := DefaultWindow().Validate(); err != nil {
		t.Errorf("default window should be valid: %v", err)
	}
	if err := (Window{}).Validate(); err == nil {
		t.Error("expected error for empty window")
	}
	if err := (Window{Months: -1}).Validate(); err == nil {
		t.Error("expected error for negative window")
	}
}

func TestWindow_String(t *testing.T) {
	tests := map[Window]string{
		{Months: 3}:          "3 months",
		{Months: 1}:          "1 month",
		{Days: 90}:           "90 days",
		{Months: 1, Days: 1}: "1 month 1 day",
	}
	for w, want := range tests {
		if got := w.String(); got != want {
			t.Errorf("%+v.String() = %q, want %q", w, got, want)
		}
	}
}

func TestClassify_Boundary(t *testing.T) {
	const cutoff = int64(1_000)
	const now = int64(1_000 + 10*24*60*60*1000)

	joined := []roster.Joined{
		{Contact: roster.Contact{ID: "at-cutoff"}, LastInteraction: cutoff, HasInteraction: true},
		{Contact: roster.Contact{ID: "before-cutoff"}, LastInteraction: cutoff - 1, HasInteraction: true},
		{Contact: roster.Contact{ID: "never"}},
		{Contact: roster.Contact{ID: "recent"}, LastInteraction: now, HasInteraction: true},
	}

	got := Classify(joined, cutoff, now)

	wantStale := map[string]bool{
		"at-cutoff":     false,
		"before-cutoff": true,
		"never":         true,
		"recent":        false,
	}
	for i, c := range got {
		if c.Contact.ID != joined[i].Contact.ID {
			t.Fatalf("order changed at %d: %s", i, c.Contact.ID)
		}
		if c.IsStale != wantStale[c.Contact.ID] {
			t.Errorf("%s: IsStale = %v, want %v", c.Contact.ID, c.IsStale, wantStale[c.Contact.ID])
		}
	}
	if got[0].IdleDays != 10 {
		t.Errorf("IdleDays = %d, want 10", got[0].IdleDays)
	}
	if got[2].IdleDays != 0 {
		t.Errorf("never-contacted IdleDays = %d, want 0", got[2].IdleDays)
	}
}

func TestClassify_NegativeClockValuesAccepted(t *testing.T) {
	joined := []roster.Joined{{Contact: roster.Contact{ID: "x"}, LastInteraction: -10, HasInteraction: true}}
	got := Classify(joined, -5, -1)
	if !got[0].IsStale {
		t.Error("expected stale for interaction before negative cutoff")
	}
}

func TestClassify_EndToEndWindows(t *testing.T) {
	now := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	cutoff := Window{Days: 90}.Cutoff(now)

	tests := []struct {
		name      string
		ago       time.Duration
		wantStale bool
	}{
		{"200 days ago is stale", 200 * 24 * time.Hour, true},
		{"10 days ago is active", 10 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined := []roster.Joined{{
				Contact:         roster.Contact{ID: "1", DisplayName: "A", Identifiers: []string{"5551234"}},
				LastInteraction: now.Add(-tt.ago).UnixMilli(),
				HasInteraction:  true,
			}}
			got := Classify(joined, cutoff, now.UnixMilli())
			if got[0].IsStale != tt.wantStale {
				t.Errorf("IsStale = %v, want %v", got[0].IsStale, tt.wantStale)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize([]Classified{
		{IsStale: true},
		{IsStale: true, HasInteraction: true},
		{IsStale: false, HasInteraction: true},
	})
	want := Summary{Total: 3, Stale: 2, Active: 1, NeverContacted: 1}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}
