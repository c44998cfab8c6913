package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Unset; the view decides
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of the proposed size
)

// Value is a frame dimension that can be fixed, a percentage of the
// proposal, or unset.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns an unset Value.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the proposed size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the cell count given the proposed size along the same
// axis. Auto values, and percentages against an Unspecified proposal,
// resolve to fallback.
func (v Value) Resolve(proposed, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		if proposed == Unspecified {
			return fallback
		}
		return int(float64(proposed) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if the value is unset.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
