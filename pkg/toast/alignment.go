package toast

import (
	"fmt"
	"strings"
)

// Alignment anchors the toast to an edge, corner or the centre of the host.
type Alignment int

const (
	AlignTop Alignment = iota
	AlignBottom
	AlignCenter
	AlignLeading
	AlignTrailing
	AlignTopLeading
	AlignTopTrailing
	AlignBottomLeading
	AlignBottomTrailing
)

var alignmentNames = map[Alignment]string{
	AlignTop:            "top",
	AlignBottom:         "bottom",
	AlignCenter:         "center",
	AlignLeading:        "leading",
	AlignTrailing:       "trailing",
	AlignTopLeading:     "top-leading",
	AlignTopTrailing:    "top-trailing",
	AlignBottomLeading:  "bottom-leading",
	AlignBottomTrailing: "bottom-trailing",
}

// AlignmentNames lists the accepted alignment names in declaration order.
func AlignmentNames() []string {
	names := make([]string, 0, len(alignmentNames))
	for a := AlignTop; a <= AlignBottomTrailing; a++ {
		names = append(names, alignmentNames[a])
	}
	return names
}

func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment converts a name such as "top" or "bottom-trailing".
func ParseAlignment(s string) (Alignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range alignmentNames {
		if name == s {
			return a, nil
		}
	}
	return AlignTop, fmt.Errorf("unknown alignment %q (want one of %s)", s, strings.Join(AlignmentNames(), ", "))
}

// vertical returns -1 for top-anchored, 1 for bottom-anchored and 0 otherwise.
func (a Alignment) vertical() int {
	switch a {
	case AlignTop, AlignTopLeading, AlignTopTrailing:
		return -1
	case AlignBottom, AlignBottomLeading, AlignBottomTrailing:
		return 1
	default:
		return 0
	}
}

// horizontal returns -1 for leading, 1 for trailing and 0 otherwise.
func (a Alignment) horizontal() int {
	switch a {
	case AlignLeading, AlignTopLeading, AlignBottomLeading:
		return -1
	case AlignTrailing, AlignTopTrailing, AlignBottomTrailing:
		return 1
	default:
		return 0
	}
}

// place returns the top-left cell of a w×h block aligned inside the host
// bounds, inset by margin from the anchored edges.
func (a Alignment) place(w, h, width, height, margin int) (int, int) {
	var x, y int
	switch a.horizontal() {
	case -1:
		x = margin
	case 1:
		x = width - w - margin
	default:
		x = (width - w) / 2
	}
	switch a.vertical() {
	case -1:
		y = margin
	case 1:
		y = height - h - margin
	default:
		y = (height - h) / 2
	}
	return max(x, 0), max(y, 0)
}
