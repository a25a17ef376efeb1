package render

import (
	"github.com/fatih/color"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

var (
	Bold     = color.New(color.Bold).SprintFunc()
	Dim      = color.New(color.Faint).SprintFunc()
	BoldCyan = color.New(color.Bold, color.FgCyan).SprintFunc()
	Red      = color.New(color.FgRed).SprintFunc()
)

var namedColors = map[string]color.Attribute{
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"yellow":  color.FgYellow,
	"green":   color.FgGreen,
	"blue":    color.FgHiBlue,
	"red":     color.FgHiRed,
	"white":   color.FgWhite,
}

// processColors cycles through distinct background colors for timeline segments.
var processColors = []color.Attribute{
	color.BgMagenta,
	color.BgCyan,
	color.BgYellow,
	color.BgGreen,
	color.BgHiBlue,
	color.BgHiRed,
}

var foregroundToBackground = map[color.Attribute]color.Attribute{
	color.FgMagenta: color.BgMagenta,
	color.FgCyan:    color.BgCyan,
	color.FgYellow:  color.BgYellow,
	color.FgGreen:   color.BgGreen,
	color.FgHiBlue:  color.BgHiBlue,
	color.FgHiRed:   color.BgHiRed,
	color.FgWhite:   color.BgWhite,
}

// Palette assigns each process a stable color: the requested one when it is
// known, otherwise the next palette entry by input position.
type Palette struct {
	colors map[string]*color.Color
}

func NewPalette(processes []core.Process, requested map[string]string) *Palette {
	p := &Palette{colors: make(map[string]*color.Color, len(processes))}
	for i, process := range processes {
		bg := processColors[i%len(processColors)]
		if fg, ok := namedColors[requested[process.ID]]; ok {
			bg = foregroundToBackground[fg]
		}
		p.colors[process.ID] = color.New(bg, color.FgBlack, color.Bold)
	}
	return p
}

func (p *Palette) Sprint(id string, s string) string {
	if id == core.IdleID {
		return color.New(color.Faint).Sprint(s)
	}
	if c, ok := p.colors[id]; ok {
		return c.Sprint(s)
	}
	return s
}
