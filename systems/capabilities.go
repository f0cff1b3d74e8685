package systems

import (
	"runtime"

	cfg "github.com/automoto/motionfx/config"
	"github.com/automoto/motionfx/platform"
	"github.com/hajimehoshi/ebiten/v2"
)

// DetectCapabilities reads the platform once at start-up. Mobile targets
// have no hover and only a coarse pointer.
func DetectCapabilities() platform.Capabilities {
	mobile := runtime.GOOS == "android" || runtime.GOOS == "ios"
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	caps := platform.Capabilities{
		FinePointer:      !mobile,
		Hover:            !mobile,
		ReducedMotion:    cfg.Motion.ReducedMotion,
		DevicePixelRatio: dpr,
	}
	platform.Logger().Debug("capabilities", "goos", runtime.GOOS, "fine", caps.FinePointer, "dpr", dpr, "reducedMotion", caps.ReducedMotion)
	return caps
}
