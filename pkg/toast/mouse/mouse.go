// Package mouse provides hit testing and drag tracking for overlay
// components rendered with Bubble Tea.
//
// Regions are registered during View (render-then-measure) and queried in
// Update. Later regions take priority over earlier ones, so a component
// registers its background first and its foreground last.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a rectangular screen area in terminal cells.
// Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit area with optional associated data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered for the current frame.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Regions added later win overlapping hits.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	if w <= 0 || h <= 0 {
		return
	}
	hm.regions = append(hm.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: h},
		Data: data,
	})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns the registered regions in priority order (lowest first).
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// ActionType classifies a mouse message after hit testing.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionDrag
	ActionDragEnd
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionDrag:
		return "drag"
	case ActionDragEnd:
		return "drag-end"
	default:
		return "none"
	}
}

// Action is the result of handling one mouse message.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int

	// Drag deltas relative to the drag start, set for ActionDrag and ActionDragEnd.
	DragDX, DragDY int
}

// Handler combines a hit map with drag state.
type Handler struct {
	HitMap *HitMap

	dragging   bool
	dragRegion string
	dragStartX int
	dragStartY int
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// StartDrag begins tracking a drag that started at (x, y) on regionID.
func (h *Handler) StartDrag(x, y int, regionID string) {
	h.dragging = true
	h.dragRegion = regionID
	h.dragStartX = x
	h.dragStartY = y
}

// IsDragging reports whether a drag is in progress.
func (h *Handler) IsDragging() bool {
	return h.dragging
}

// DragRegion returns the region ID the current drag started on.
func (h *Handler) DragRegion() string {
	return h.dragRegion
}

// DragDelta returns the offset of (x, y) from the drag start.
func (h *Handler) DragDelta(x, y int) (int, int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag stops drag tracking.
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
}

// Clear removes all regions. Drag state survives so a drag can span frames.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleMouse classifies msg against the current hit map and drag state.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return action
		}
		action.Type = ActionClick
		action.Region = h.HitMap.Test(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if h.dragging {
			action.Type = ActionDrag
			action.DragDX, action.DragDY = h.DragDelta(msg.X, msg.Y)
			return action
		}
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if h.dragging {
			action.Type = ActionDragEnd
			action.DragDX, action.DragDY = h.DragDelta(msg.X, msg.Y)
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			h.EndDrag()
		}
	}

	return action
}
