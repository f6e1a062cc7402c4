package toast

// DragEvaluator tracks the offset of an in-progress drag and decides, when
// the drag ends, whether it went far enough toward the anchored edge to
// dismiss the toast.
type DragEvaluator struct {
	threshold int
	align     Alignment
	x, y      int
}

// NewDragEvaluator returns an evaluator dismissing after threshold rows (or
// twice as many columns) of travel toward the edge align anchors to.
func NewDragEvaluator(threshold int, align Alignment) *DragEvaluator {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &DragEvaluator{threshold: threshold, align: align}
}

// Move sets the current drag offset.
func (d *DragEvaluator) Move(dx, dy int) {
	d.x, d.y = dx, dy
}

// Offset returns the current drag offset.
func (d *DragEvaluator) Offset() (int, int) {
	return d.x, d.y
}

// Reset returns the offset to zero.
func (d *DragEvaluator) Reset() {
	d.x, d.y = 0, 0
}

// Exceeded reports whether the current offset passes the threshold.
//
// Edge-anchored toasts only count travel toward their edge: a top toast is
// dragged up, a trailing toast right. Corner toasts accept either edge and
// centred toasts accept any direction.
func (d *DragEvaluator) Exceeded() bool {
	v, h := d.align.vertical(), d.align.horizontal()
	cols := d.threshold * 2

	if v == 0 && h == 0 {
		return abs(d.y) >= d.threshold || abs(d.x) >= cols
	}
	if v != 0 && d.y*v >= d.threshold {
		return true
	}
	if h != 0 && d.x*h >= cols {
		return true
	}
	return false
}

// End finishes the drag and reports whether it should dismiss. The offset
// is left in place so the caller can animate it back to zero.
func (d *DragEvaluator) End() bool {
	return d.Exceeded()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
