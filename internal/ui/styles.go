package ui

import (
	"fmt"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// ANSI256 color codes.
const (
	colorArtery = 160 // red
	colorVein   = 68  // blue
	colorCap    = 133 // purple
	colorAccent = 74  // blue
	colorMuted  = 245 // medium gray
)

var noColor bool

// RenderVesselType returns the vessel type colored by its kind: arteries red,
// veins blue, capillaries purple.
func RenderVesselType(t model.VesselType) string {
	if noColor {
		return string(t)
	}
	code := colorMuted
	switch t {
	case model.TypeArtery:
		code = colorArtery
	case model.TypeVein:
		code = colorVein
	case model.TypeCapillary:
		code = colorCap
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, t)
}

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorAccent, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
