package zoomable

import (
	"fmt"
	"os"
)

// debugf prints a diagnostic line to stderr when Config.Debug is set.
func (z *Zoomable) debugf(format string, args ...any) {
	if !z.cfg.Debug {
		return
	}
	t := z.state.snapshot()
	_, _ = fmt.Fprintf(os.Stderr, "[zoomable] %s | scale: %.3f | focal: (%.1f, %.1f) | translate: (%.1f, %.1f)\n",
		fmt.Sprintf(format, args...), t.Scale, t.Focal.X, t.Focal.Y, t.Translate.X, t.Translate.Y)
}
