package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render returns the buffer as styled text, one line per row joined with
// "\n". Adjacent cells sharing a StyleKey are rendered with a single
// Style.Render call; keys missing from styles are written unstyled.
// An empty buffer renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		var sb strings.Builder
		flush := func(style StyleKey) {
			if len(run) == 0 {
				return
			}
			if s, ok := styles[style]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		cur := row[0].Style
		for _, c := range row {
			if c.Style != cur {
				flush(cur)
				cur = c.Style
			}
			run = append(run, c.Ch)
		}
		flush(cur)
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// String returns the buffer's runes without styling.
func (b *Buffer) String() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}
