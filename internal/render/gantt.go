package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

// WriteGantt draws the timeline as one row of labelled segments with a time axis
// underneath. Each time unit takes unitWidth columns; segments grow to fit their label.
func WriteGantt(w io.Writer, timeline []core.TimelineBlock, palette *Palette, unitWidth int) {
	if len(timeline) == 0 {
		fmt.Fprintln(w, Dim("(empty timeline)"))
		return
	}
	if unitWidth < 1 {
		unitWidth = 1
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	axis.WriteString(strconv.Itoa(timeline[0].StartTime))
	column := 0
	for _, block := range timeline {
		width := block.Duration() * unitWidth
		if width < len(block.ID)+2 {
			width = len(block.ID) + 2
		}
		bar.WriteString(palette.Sprint(block.ID, center(block.ID, width)))
		bar.WriteString("|")

		column += width + 1
		label := strconv.Itoa(block.EndTime)
		// axis labels are right aligned under the segment border
		pad := column - visibleLen(axis.String()) - len(label) + 1
		if pad < 1 {
			pad = 1
		}
		axis.WriteString(strings.Repeat(" ", pad))
		axis.WriteString(label)
	}
	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, axis.String())
}

func center(s string, width int) string {
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// visibleLen counts runes; the axis never carries color codes.
func visibleLen(s string) int {
	return len([]rune(s))
}
