package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/pmoracho/tmenu/internal/menu"
)

// menuChromeRows is the number of rows the box consumes around the item
// list: border top/bottom, vertical padding, title row, the blank rows
// framing the list, and the filter prompt.
const menuChromeRows = 8

// boxMargin keeps the box off the terminal edges.
const boxMargin = 4

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. The menu is drawn as a single bordered box
// centred in the terminal; the border colour signals whether the root
// level or a submenu is on screen.
func (m *Model) View() string {
	contentW := m.contentWidth()
	lines := make([]styledLine, 0, 16)

	current := m.currentLevel()
	title := ""
	if current != nil {
		title = current.Title
	}
	lines = append(lines, styledLine{text: title, style: styles.Title})
	lines = append(lines, styledLine{})

	if current != nil {
		m.syncViewport(current)
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			for i, item := range displayItems {
				idx := start + i
				lines = append(lines, m.buildItemLine(item, idx, current, contentW))
			}
		}
	}

	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.filterPrompt(), raw: true})
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	} else if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}

	lines = applyWidth(lines, contentW)
	body := renderLines(lines)

	border := styles.BorderRoot
	if !m.engine.AtRoot() {
		border = styles.BorderSubmenu
	}
	box := body
	if border != nil {
		boxStyle := border.Copy()
		if contentW > 0 {
			boxStyle = boxStyle.Width(contentW)
		}
		box = boxStyle.Render(body)
	}

	out := box
	if m.showFooter {
		footer := "↑/↓ move  enter select  esc back  ctrl+c quit"
		if styles.Footer != nil {
			footer = styles.Footer.Render(footer)
		}
		out = lipgloss.JoinVertical(lipgloss.Center, box, footer)
	}
	if m.width > 0 && m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// contentWidth is the inner width of the box, excluding border and
// horizontal padding. Zero means "no limit" before the first resize.
func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - boxMargin - 6 // 2 border cols + 4 padding cols
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) buildItemLine(item menu.Item, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.SubmenuMarker
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedIndicator
		lineStyle = styles.SelectedItem
	}
	label := item.Label
	if _, ok := item.Action.(menu.Submenu); ok {
		label += " ▸"
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
