package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderSpaceSummary(space domain.Space) string {
	var b strings.Builder

	m := space.Metadata
	if m.Description != "" {
		b.WriteString(clampString(m.Description, 72))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Style: %s (%s)   Size: %.0fx%.0fx%.0f\n",
		space.Layout.Style, space.Layout.Environment, m.Size[0], m.Size[1], m.Size[2]))
	b.WriteString(fmt.Sprintf("Rooms: %d   Doorways: %d   Lights: %d   Objects: %d",
		len(space.Layout.Rooms), len(space.Layout.Doorways), len(space.Layout.Lights), len(space.Objects)))

	if len(space.Layout.Rooms) > 0 {
		b.WriteString("\n\n")
		for i, r := range space.Layout.Rooms {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("  [%d] %s  %.1fx%.1f  %d connection(s)",
				i, r.ID, r.Size[0], r.Size[2], len(r.Connections)))
		}
	}

	return b.String()
}
