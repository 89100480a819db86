package diagram

import "fmt"

// Interchange slides the box at layer i past the boxes between i and j,
// leaving it at layer j. Each step swaps two adjacent layers, which is only
// possible when the boxes act on disjoint wires; otherwise an
// InterchangeError is returned. Interchanging then composing agrees with
// composing then tensoring, which is the interchange law of the monoidal
// structure.
func (d *Diagram) Interchange(i, j int) (*Diagram, error) {
	if i < 0 || i >= len(d.boxes) || j < 0 || j >= len(d.boxes) {
		return nil, fmt.Errorf("interchange: layer index out of range [%d, %d)", 0, len(d.boxes))
	}
	if i == j {
		return d, nil
	}
	cur := d
	var err error
	if i < j {
		for k := i; k < j; k++ {
			cur, err = cur.swapAdjacent(k)
			if err != nil {
				return nil, err
			}
		}
	} else {
		for k := i; k > j; k-- {
			cur, err = cur.swapAdjacent(k - 1)
			if err != nil {
				return nil, err
			}
		}
	}
	return cur, nil
}

// swapAdjacent exchanges layers k and k+1. When both boxes touch the unit
// (empty wires on the shared boundary) either order is valid; the convention
// here slides the lower box to the left, matching the reduction order used by
// NormalForm.
func (d *Diagram) swapAdjacent(k int) (*Diagram, error) {
	b0, b1 := d.boxes[k], d.boxes[k+1]
	off0, off1 := d.offsets[k], d.offsets[k+1]

	var newOff0, newOff1 int
	switch {
	case off0 >= off1+len(b1.Dom):
		// b1 acts strictly left of b0: b1 keeps its offset, b0 shifts by
		// the width change b1 introduces on its left.
		newOff1 = off1
		newOff0 = off0 - len(b1.Dom) + len(b1.Cod)
	case off1 >= off0+len(b0.Cod):
		// b1 acts strictly right of b0's output.
		newOff1 = off1 - len(b0.Cod) + len(b0.Dom)
		newOff0 = off0
	default:
		return nil, &InterchangeError{I: k, J: k + 1}
	}

	boxes := make([]Box, len(d.boxes))
	copy(boxes, d.boxes)
	offsets := make([]int, len(d.offsets))
	copy(offsets, d.offsets)
	boxes[k], boxes[k+1] = b1, b0
	offsets[k], offsets[k+1] = newOff1, newOff0
	return New(d.dom, d.cod, boxes, offsets)
}
