package peg

import "testing"

func TestPositionCalculator(t *testing.T) {
	data := []struct {
		text    string
		inputs  []int
		outputs []Position
	}{
		{"", []int{0}, []Position{{0, 1, 1}}},
		{"A\n", []int{0, 1, 2}, []Position{
			{0, 1, 1},
			{1, 1, 2},
			{2, 2, 1},
		}},
		{"\nAA\r\r\nA\n\n", []int{1, 3, 4, 5, 6, 9}, []Position{
			{1, 2, 1},
			{3, 2, 3},
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{9, 6, 1},
		}},
	}

	for _, d := range data {
		pcalc := newPositionCalculator(d.text)
		for i := range d.inputs {
			pos := pcalc.at(d.inputs[i])
			if d.outputs[i] != pos {
				t.Errorf("%q.at(%d) => %v != %v (lnends=%v)",
					d.text, d.inputs[i], pos, d.outputs[i], pcalc.lnends)
			}
		}
	}
}
