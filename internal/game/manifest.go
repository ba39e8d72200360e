package game

// ManifestRows are the categories a ship can be loaded with, in designer order.
var ManifestRows = [...]ResourceKind{Metal, Population, Food, Weaponry}

// Manifest is a transfer being drafted in the ship designer.
type Manifest struct {
	From   PlanetID
	To     PlanetID
	Cursor int
	Load   Ledger
}

// NewManifest starts an empty transfer between two planets.
func NewManifest(from, to PlanetID) *Manifest {
	return &Manifest{From: from, To: to}
}

// Selected returns the category under the cursor.
func (m *Manifest) Selected() ResourceKind {
	return ManifestRows[m.Cursor]
}

// MoveCursor moves the cursor by delta rows, wrapping around.
func (m *Manifest) MoveCursor(delta int) {
	n := len(ManifestRows)
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// Adjust changes the selected row by delta, kept within [0, limit].
func (m *Manifest) Adjust(delta int64, limits Ledger) {
	k := m.Selected()
	v := m.Load.Get(k) + delta
	m.Load.Set(k, max(0, min(v, limits.Get(k))))
}

// Clamp pulls every row back under limits, which shrink as the sender
// spends or gains stock while the designer is open.
func (m *Manifest) Clamp(limits Ledger) {
	for _, k := range ManifestRows {
		m.Load.Set(k, max(0, min(m.Load.Get(k), limits.Get(k))))
	}
}
