package game

import (
	"fmt"
	"strings"
)

// ResourceKind is one of the fixed ledger categories.
type ResourceKind uint8

const (
	Population ResourceKind = iota
	Species
	Metal
	Wood
	Water
	Food
	Weaponry
	numResources
)

// AllResources lists every category in display order.
var AllResources = [numResources]ResourceKind{
	Population, Species, Metal, Wood, Water, Food, Weaponry,
}

// ResourceName returns a human-readable label for a resource category.
func ResourceName(k ResourceKind) string {
	switch k {
	case Population:
		return "Population"
	case Species:
		return "Species"
	case Metal:
		return "Metal"
	case Wood:
		return "Wood"
	case Water:
		return "Water"
	case Food:
		return "Food"
	case Weaponry:
		return "Weaponry"
	default:
		return "Unknown"
	}
}

// Ledger holds a signed quantity for every resource category.
// The zero value is an empty ledger; all categories are always present.
type Ledger struct {
	store [numResources]int64
}

// NewLedger builds a ledger from a sparse map. Missing categories are zero.
func NewLedger(amounts map[ResourceKind]int64) Ledger {
	var l Ledger
	for k, v := range amounts {
		if k < numResources {
			l.store[k] = v
		}
	}
	return l
}

// Get returns the quantity of one category.
func (l Ledger) Get(k ResourceKind) int64 {
	if k >= numResources {
		return 0
	}
	return l.store[k]
}

// Set overwrites the quantity of one category.
func (l *Ledger) Set(k ResourceKind, v int64) {
	if k < numResources {
		l.store[k] = v
	}
}

// Add returns the per-category sum. No clamping.
func (l Ledger) Add(o Ledger) Ledger {
	for i := range l.store {
		l.store[i] += o.store[i]
	}
	return l
}

// Sub returns the per-category difference. No clamping.
func (l Ledger) Sub(o Ledger) Ledger {
	for i := range l.store {
		l.store[i] -= o.store[i]
	}
	return l
}

// Covers reports whether every category of l is at least the required amount.
func (l Ledger) Covers(required Ledger) bool {
	for i := range l.store {
		if l.store[i] < required.store[i] {
			return false
		}
	}
	return true
}

// Negative reports whether any category has gone below zero.
func (l Ledger) Negative() bool {
	for _, v := range l.store {
		if v < 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether every category is zero.
func (l Ledger) IsZero() bool {
	return l == Ledger{}
}

func (l Ledger) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, k := range AllResources {
		if l.store[k] == 0 {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s:%d", ResourceName(k), l.store[k])
	}
	b.WriteByte('}')
	return b.String()
}
