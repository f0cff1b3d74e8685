package platform

// Capabilities is the one-shot media/capability query taken at mount.
type Capabilities struct {
	// FinePointer is true when a precise pointer (mouse, trackpad) exists.
	FinePointer bool
	// Hover is true when that pointer can hover without pressing.
	Hover bool
	// ReducedMotion mirrors the user's reduced-motion preference.
	ReducedMotion bool
	// DevicePixelRatio scales logical px to surface px. Values <= 0 mean 1.
	DevicePixelRatio float64
}

// CoarseOnly reports a touch-only device; the cursor follower stays inert.
func (c Capabilities) CoarseOnly() bool {
	return !c.FinePointer || !c.Hover
}

// DPR returns the device pixel ratio with the default applied.
func (c Capabilities) DPR() float64 {
	if c.DevicePixelRatio <= 0 {
		return 1
	}
	return c.DevicePixelRatio
}
