package diagram

// Snake removal: a cap feeding a cup through an otherwise idle wire can be
// yanked straight, deleting both boxes. NormalForm repeats this until no
// yankable pair remains. No stronger minimality is attempted.

// wireEnd is the result of following a wire downward from a box output.
type wireEnd struct {
	box    int // index of the box consuming the wire, or Len() for the boundary
	offset int // offset of the wire at its bottom end
	left   []int
	right  []int
}

// followWire follows the output wire of box i at offset j down the diagram,
// recording the boxes obstructing it on the left and on the right.
func (d *Diagram) followWire(i, j int) wireEnd {
	var left, right []int
	for i < len(d.boxes)-1 {
		i++
		b, off := d.boxes[i], d.offsets[i]
		if off <= j && j < off+len(b.Dom) {
			return wireEnd{box: i, offset: j, left: left, right: right}
		}
		if off <= j {
			j += len(b.Cod) - len(b.Dom)
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return wireEnd{box: len(d.boxes), offset: j, left: left, right: right}
}

// yankable identifies a cap/cup pair joined by a straight wire.
type yankable struct {
	cup, cap  int
	left      []int
	right     []int
	leftSnake bool // Id @ Cap >> Cup @ Id; otherwise Cap @ Id >> Id @ Cup
}

// findSnake scans for a cap whose output wire runs into a cancelling cup.
func (d *Diagram) findSnake() (yankable, bool) {
	for cap := range d.boxes {
		if d.boxes[cap].Kind != KindCap {
			continue
		}
		for _, cand := range []struct {
			leftSnake bool
			wire      int
		}{
			{true, d.offsets[cap]},
			{false, d.offsets[cap] + 1},
		} {
			end := d.followWire(cap, cand.wire)
			cup := end.box
			if cup == len(d.boxes) || d.boxes[cup].Kind != KindCup {
				continue
			}
			if cand.leftSnake && d.offsets[cup]+1 != end.offset {
				continue
			}
			if !cand.leftSnake && d.offsets[cup] != end.offset {
				continue
			}
			return yankable{
				cup: cup, cap: cap,
				left: end.left, right: end.right,
				leftSnake: cand.leftSnake,
			}, true
		}
	}
	return yankable{}, false
}

// removeSnake interchanges the obstructing boxes out of the way until the cap
// and cup are adjacent, then deletes the pair.
func (d *Diagram) removeSnake(y yankable) (*Diagram, error) {
	cur, cup, cap := d, y.cup, y.cap
	var err error
	if y.leftSnake {
		for _, box := range y.left {
			cur, err = cur.Interchange(box, cap)
			if err != nil {
				return nil, err
			}
			for i, rb := range y.right {
				if rb < box {
					y.right[i]++
				}
			}
			cap++
		}
		for i := len(y.right) - 1; i >= 0; i-- {
			cur, err = cur.Interchange(y.right[i], cup)
			if err != nil {
				return nil, err
			}
			cup--
		}
	} else {
		for i := len(y.left) - 1; i >= 0; i-- {
			box := y.left[i]
			cur, err = cur.Interchange(box, cup)
			if err != nil {
				return nil, err
			}
			for k, rb := range y.right {
				if rb > box {
					y.right[k]--
				}
			}
			cup--
		}
		for _, box := range y.right {
			cur, err = cur.Interchange(box, cap)
			if err != nil {
				return nil, err
			}
			cap++
		}
	}
	boxes := make([]Box, 0, len(cur.boxes)-2)
	boxes = append(boxes, cur.boxes[:cap]...)
	boxes = append(boxes, cur.boxes[cup+1:]...)
	offsets := make([]int, 0, len(cur.offsets)-2)
	offsets = append(offsets, cur.offsets[:cap]...)
	offsets = append(offsets, cur.offsets[cup+1:]...)
	return New(cur.dom, cur.cod, boxes, offsets)
}

// NormalForm yanks every cap/cup snake out of the diagram and returns the
// reduced diagram. The input is never modified.
func (d *Diagram) NormalForm() (*Diagram, error) {
	cur := d
	for {
		y, ok := cur.findSnake()
		if !ok {
			return cur, nil
		}
		next, err := cur.removeSnake(y)
		if err != nil {
			return nil, err
		}
		cur = next
	}
}
