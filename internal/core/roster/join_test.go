package roster

import (
	"testing"

	"github.com/example/dormant/internal/core/interaction"
)

func TestJoin(t *testing.T) {
	idx := interaction.NewIndex(map[string]int64{
		"111": 100,
		"222": 300,
		"333": 50,
	})

	tests := []struct {
		name     string
		contact  Contact
		wantHas  bool
		wantLast int64
	}{
		{
			name:     "max across identifiers, not first match",
			contact:  Contact{ID: "1", Identifiers: []string{"111", "222"}},
			wantHas:  true,
			wantLast: 300,
		},
		{
			name:     "raw identifiers are normalized",
			contact:  Contact{ID: "2", Identifiers: []string{"(3) 3-3"}},
			wantHas:  true,
			wantLast: 50,
		},
		{
			name:    "no identifier indexed",
			contact: Contact{ID: "3", Identifiers: []string{"999"}},
			wantHas: false,
		},
		{
			name:    "zero identifiers",
			contact: Contact{ID: "4"},
			wantHas: false,
		},
		{
			name:    "only invalid identifiers",
			contact: Contact{ID: "5", Identifiers: []string{"n/a", ""}},
			wantHas: false,
		},
		{
			name:     "partial match",
			contact:  Contact{ID: "6", Identifiers: []string{"999", "333"}},
			wantHas:  true,
			wantLast: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Join([]Contact{tt.contact}, idx)
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1", len(got))
			}
			if got[0].HasInteraction != tt.wantHas {
				t.Errorf("HasInteraction = %v, want %v", got[0].HasInteraction, tt.wantHas)
			}
			if got[0].LastInteraction != tt.wantLast {
				t.Errorf("LastInteraction = %d, want %d", got[0].LastInteraction, tt.wantLast)
			}
		})
	}
}

func TestJoin_PreservesRosterOrder(t *testing.T) {
	contacts := []Contact{{ID: "c"}, {ID: "a"}, {ID: "b"}}
	got := Join(contacts, interaction.NewIndex(nil))

	for i, want := range []string{"c", "a", "b"} {
		if got[i].Contact.ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].Contact.ID, want)
		}
	}
}

func TestJoin_NegativeTimestampStillCounts(t *testing.T) {
	idx := interaction.NewIndex(map[string]int64{"111": -5})
	got := Join([]Contact{{ID: "1", Identifiers: []string{"111"}}}, idx)

	if !got[0].HasInteraction || got[0].LastInteraction != -5 {
		t.Errorf("got %+v, want interaction at -5", got[0])
	}
}
