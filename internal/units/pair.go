// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

// Side identifies one of the two fields of a Pair.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) other() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Pair models two linked value fields with unit selectors. The state is
// the last edited field and its raw input; both displayed values are
// derived from it on every View, so edits never feed back into each other.
type Pair struct {
	table     Table
	unit      [2]string
	edited    Side
	input     string
	precision int
}

// PairView is the rendered state of a Pair.
type PairView struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	LeftUnit  string `json:"left_unit"`
	RightUnit string `json:"right_unit"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

// NewPair returns an empty pair converting between leftUnit and rightUnit.
func NewPair(c Category, leftUnit, rightUnit string, precision int) (*Pair, error) {
	t, err := Lookup(c)
	if err != nil {
		return nil, err
	}
	if _, err := t.Unit(leftUnit); err != nil {
		return nil, err
	}
	if _, err := t.Unit(rightUnit); err != nil {
		return nil, err
	}
	return &Pair{
		table:     t,
		unit:      [2]string{leftUnit, rightUnit},
		precision: precision,
	}, nil
}

// SetLeft records input typed into the left field.
func (p *Pair) SetLeft(input string) { p.set(Left, input) }

// SetRight records input typed into the right field.
func (p *Pair) SetRight(input string) { p.set(Right, input) }

func (p *Pair) set(s Side, input string) {
	p.edited = s
	p.input = input
}

// SetLeftUnit changes the left unit selector.
func (p *Pair) SetLeftUnit(key string) error { return p.setUnit(Left, key) }

// SetRightUnit changes the right unit selector.
func (p *Pair) SetRightUnit(key string) error { return p.setUnit(Right, key) }

func (p *Pair) setUnit(s Side, key string) error {
	if _, err := p.table.Unit(key); err != nil {
		return err
	}
	p.unit[s] = key
	return nil
}

// Swap exchanges the two sides, units and values together.
func (p *Pair) Swap() {
	p.unit[Left], p.unit[Right] = p.unit[Right], p.unit[Left]
	p.edited = p.edited.other()
}

// View renders both fields from the current state. The edited field
// echoes its raw input; the other field is blank when the input is not a
// number or the conversion is undefined.
func (p *Pair) View() PairView {
	var fields [2]string
	fields[p.edited] = p.input

	view := PairView{LeftUnit: p.unit[Left], RightUnit: p.unit[Right]}

	if p.input != "" {
		v, err := Parse(p.input)
		if err == nil {
			var out float64
			out, err = p.table.Convert(v, p.unit[p.edited], p.unit[p.edited.other()])
			if err == nil {
				fields[p.edited.other()] = Format(out, p.precision)
				view.Valid = true
			}
		}
		if err != nil {
			view.Error = err.Error()
		}
	}

	view.Left, view.Right = fields[Left], fields[Right]
	return view
}
