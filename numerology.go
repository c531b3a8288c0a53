package helix

import "fmt"

// Numerology is the table of named integer constants that drives every
// scale, density and sample count in the composition.
//
// All fields must be positive. The renderer divides by several of them and
// does not check; call Validate at the boundary.
type Numerology struct {
	Three        int `json:"THREE"`        // vesica base radius divisor
	Seven        int `json:"SEVEN"`        // vesica offset divisor
	Nine         int `json:"NINE"`         // vesica pitch multiplier, helix amplitude divisor
	Eleven       int `json:"ELEVEN"`       // spiral and helix turns
	TwentyTwo    int `json:"TWENTYTWO"`    // tree node radius divisor
	ThirtyThree  int `json:"THIRTYTHREE"`  // helix rung count, spiral scale divisor
	NinetyNine   int `json:"NINETYNINE"`   // samples per helix strand
	OneFortyFour int `json:"ONEFORTYFOUR"` // spiral samples
}

// DefaultNumerology returns the canonical constant table.
func DefaultNumerology() Numerology {
	return Numerology{
		Three:        3,
		Seven:        7,
		Nine:         9,
		Eleven:       11,
		TwentyTwo:    22,
		ThirtyThree:  33,
		NinetyNine:   99,
		OneFortyFour: 144,
	}
}

// Validate reports the first non-positive constant.
func (n Numerology) Validate() error {
	fields := [...]struct {
		name  string
		value int
	}{
		{"THREE", n.Three},
		{"SEVEN", n.Seven},
		{"NINE", n.Nine},
		{"ELEVEN", n.Eleven},
		{"TWENTYTWO", n.TwentyTwo},
		{"THIRTYTHREE", n.ThirtyThree},
		{"NINETYNINE", n.NinetyNine},
		{"ONEFORTYFOUR", n.OneFortyFour},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s = %d, must be positive", ErrInvalidNumerology, f.name, f.value)
		}
	}
	return nil
}
