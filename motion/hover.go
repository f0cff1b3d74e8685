package motion

import (
	"github.com/automoto/motionfx/platform"
	"github.com/solarlune/resolv"
)

const (
	hoverTag    = "interactive"
	probeTag    = "pointer"
	hoverCellPx = 32
)

// HoverTargets is the explicit registry of interactive elements the cursor
// reacts to. Rects are in document coordinates.
type HoverTargets struct {
	width, height int
	space         *resolv.Space
	probe         *resolv.Object
	targets       map[string]*resolv.Object
	order         []string
}

// NewHoverTargets creates a registry covering a width x height document.
func NewHoverTargets(width, height int) *HoverTargets {
	h := &HoverTargets{targets: make(map[string]*resolv.Object)}
	h.rebuild(width, height)
	return h
}

func (h *HoverTargets) rebuild(width, height int) {
	if width < hoverCellPx {
		width = hoverCellPx
	}
	if height < hoverCellPx {
		height = hoverCellPx
	}
	h.width, h.height = width, height
	h.space = resolv.NewSpace(width, height, hoverCellPx, hoverCellPx)
	h.probe = resolv.NewObject(0, 0, 1, 1, probeTag)
	h.space.Add(h.probe)
	for _, id := range h.order {
		h.space.Add(h.targets[id])
	}
}

// Resize re-creates the broad phase for a new document size, keeping every
// registered target.
func (h *HoverTargets) Resize(width, height int) {
	if width == h.width && height == h.height {
		return
	}
	h.rebuild(width, height)
}

// Register binds id to rect. Registering an id that is already bound moves
// it instead of binding it twice.
func (h *HoverTargets) Register(id string, rect platform.Rect) (unregister func()) {
	if obj, ok := h.targets[id]; ok {
		obj.X, obj.Y, obj.W, obj.H = rect.X, rect.Y, rect.W, rect.H
		obj.Update()
		return h.unregisterFunc(id, obj)
	}
	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, hoverTag)
	obj.Data = id
	h.targets[id] = obj
	h.order = append(h.order, id)
	h.space.Add(obj)
	return h.unregisterFunc(id, obj)
}

func (h *HoverTargets) unregisterFunc(id string, obj *resolv.Object) func() {
	return func() {
		if h.targets[id] != obj {
			return
		}
		delete(h.targets, id)
		for i, other := range h.order {
			if other == id {
				h.order = append(h.order[:i:i], h.order[i+1:]...)
				break
			}
		}
		h.space.Remove(obj)
	}
}

// Hit returns the target under (x, y), most recently registered first.
func (h *HoverTargets) Hit(x, y float64) (string, bool) {
	h.probe.X, h.probe.Y = x, y
	h.probe.Update()

	check := h.probe.Check(0, 0, hoverTag)
	if check == nil {
		return "", false
	}
	var (
		best     string
		bestRank = -1
	)
	for _, obj := range check.ObjectsByTags(hoverTag) {
		id, _ := obj.Data.(string)
		r := platform.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		if !r.Contains(x, y) {
			continue
		}
		if rank := h.rank(id); rank > bestRank {
			best, bestRank = id, rank
		}
	}
	return best, bestRank >= 0
}

func (h *HoverTargets) rank(id string) int {
	for i, other := range h.order {
		if other == id {
			return i
		}
	}
	return -1
}

// Len returns the number of registered targets.
func (h *HoverTargets) Len() int {
	return len(h.targets)
}
