package layout

import "testing"

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value  Value
		isAuto bool
		unit   Unit
		amount float64
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
		},
		"Fixed": {
			value:  Fixed(100),
			unit:   UnitFixed,
			amount: 100,
		},
		"Percent": {
			value:  Percent(50),
			unit:   UnitPercent,
			amount: 50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value    Value
		proposed int
		fallback int
		expected int
	}

	tests := map[string]tc{
		"fixed ignores proposal": {
			value:    Fixed(50),
			proposed: 100,
			fallback: 999,
			expected: 50,
		},
		"fixed with unspecified proposal": {
			value:    Fixed(7),
			proposed: Unspecified,
			fallback: 0,
			expected: 7,
		},
		"percent of proposal": {
			value:    Percent(25),
			proposed: 200,
			fallback: 0,
			expected: 50,
		},
		"percent truncates": {
			value:    Percent(33),
			proposed: 10,
			fallback: 0,
			expected: 3,
		},
		"percent of unspecified falls back": {
			value:    Percent(50),
			proposed: Unspecified,
			fallback: 12,
			expected: 12,
		},
		"auto falls back": {
			value:    Auto(),
			proposed: 80,
			fallback: 4,
			expected: 4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.proposed, tt.fallback); got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d", tt.proposed, tt.fallback, got, tt.expected)
			}
		})
	}
}
