package game

import "testing"

func TestLedgerArithmetic(t *testing.T) {
	a := NewLedger(map[ResourceKind]int64{Metal: 8000, Population: 500, Food: 200, Weaponry: 50})
	b := NewLedger(map[ResourceKind]int64{Metal: 1000, Population: 100})

	diff := a.Sub(b)
	want := NewLedger(map[ResourceKind]int64{Metal: 7000, Population: 400, Food: 200, Weaponry: 50})
	if diff != want {
		t.Errorf("Sub = %v, want %v", diff, want)
	}
	if got := diff.Add(b); got != a {
		t.Errorf("Sub then Add = %v, want %v", got, a)
	}

	// Operands are values; neither side is mutated
	if a.Get(Metal) != 8000 || b.Get(Metal) != 1000 {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestLedgerSubDoesNotClamp(t *testing.T) {
	a := NewLedger(map[ResourceKind]int64{Water: 10})
	b := NewLedger(map[ResourceKind]int64{Water: 25})

	got := a.Sub(b)
	if got.Get(Water) != -15 {
		t.Errorf("Water = %d, want -15", got.Get(Water))
	}
	if !got.Negative() {
		t.Error("Negative() = false, want true")
	}
}

func TestLedgerCovers(t *testing.T) {
	have := NewLedger(map[ResourceKind]int64{Metal: 100, Food: 50})

	tests := []struct {
		name string
		req  map[ResourceKind]int64
		want bool
	}{
		{"empty request", nil, true},
		{"exact", map[ResourceKind]int64{Metal: 100, Food: 50}, true},
		{"below", map[ResourceKind]int64{Metal: 99}, true},
		{"one over", map[ResourceKind]int64{Metal: 101}, false},
		{"missing category", map[ResourceKind]int64{Wood: 1}, false},
		{"negative request", map[ResourceKind]int64{Wood: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := have.Covers(NewLedger(tt.req)); got != tt.want {
				t.Errorf("Covers(%v) = %v, want %v", tt.req, got, tt.want)
			}
		})
	}
}

func TestLedgerDefaults(t *testing.T) {
	var l Ledger
	for _, k := range AllResources {
		if l.Get(k) != 0 {
			t.Errorf("%s = %d on zero ledger", ResourceName(k), l.Get(k))
		}
	}
	if !l.IsZero() {
		t.Error("zero ledger IsZero() = false")
	}
	if got := l.Get(numResources); got != 0 {
		t.Errorf("out of range Get = %d, want 0", got)
	}
	l.Set(numResources, 5) // ignored
	if !l.IsZero() {
		t.Error("out of range Set changed the ledger")
	}
}

func TestLedgerString(t *testing.T) {
	l := NewLedger(map[ResourceKind]int64{Metal: 1000, Population: 100})
	if got, want := l.String(), "{Population:100, Metal:1000}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Ledger{}).String(); got != "{}" {
		t.Errorf("empty String() = %q", got)
	}
}
