package menu

import (
	"fmt"
	"os"
	"strings"
)

const defaultTitle = "Main Menu"

// Root items sit at indent 0..2; anything deeper belongs to the open
// submenu block.
const submenuIndent = 2

// Load reads and parses a menu definition file. An unreadable file is
// the only error the parser surfaces; format problems never fail.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read menu file %q: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Parse converts menu definition text into a Document. The format is
// line oriented and permissive: malformed lines are skipped rather
// than rejected, so hand-edited files never fail to load.
func Parse(text string) Document {
	doc := Document{Title: defaultTitle}
	titleSet := false

	var openLabel string
	var openItems []Item
	openActive := false

	// Closing a submenu block appends it to the root items at the point
	// it closes, which keeps root ordering identical to file ordering.
	closeSubmenu := func() {
		if !openActive {
			return
		}
		doc.Items = append(doc.Items, Item{
			Label:  openLabel,
			Action: Submenu{Items: openItems},
		})
		openActive = false
		openLabel = ""
		openItems = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		switch {
		case strings.HasSuffix(trimmed, ":") && indent == 0:
			// Only the first top-level key names the menu; later ones
			// are silently ignored.
			if !titleSet {
				doc.Title = stripQuotes(strings.TrimSuffix(trimmed, ":"))
				titleSet = true
			}
		case strings.HasSuffix(trimmed, ":"):
			closeSubmenu()
			openLabel = submenuLabel(trimmed)
			openItems = nil
			openActive = true
		case strings.Contains(trimmed, "["):
			item, ok := parseItemLine(trimmed)
			if !ok {
				continue
			}
			if indent > submenuIndent {
				// Items this deep without an open block have nowhere to
				// go and are dropped.
				if openActive {
					openItems = append(openItems, item)
				}
			} else {
				closeSubmenu()
				doc.Items = append(doc.Items, item)
			}
		}
	}
	closeSubmenu()
	return doc
}

// submenuLabel extracts the label of a submenu header line: the text
// between the first and last double quote, or the whole trimmed text
// when unquoted, minus the trailing colon.
func submenuLabel(trimmed string) string {
	name := strings.TrimSuffix(trimmed, ":")
	if i := strings.Index(name, `"`); i >= 0 {
		if j := strings.LastIndex(name, `"`); j > i {
			return name[i+1 : j]
		}
	}
	return strings.TrimSpace(name)
}

// parseItemLine parses a line of shape `"Label"[meta]: command`. The
// split happens at the last "]:" so commands may themselves contain
// brackets. The bracketed metadata is kept but currently unused.
func parseItemLine(trimmed string) (Item, bool) {
	cut := strings.LastIndex(trimmed, "]:")
	if cut < 0 {
		return Item{}, false
	}
	open := strings.Index(trimmed, "[")
	if open < 0 || open > cut {
		return Item{}, false
	}
	return Item{
		Label:  stripQuotes(trimmed[:open]),
		Meta:   trimmed[open+1 : cut],
		Action: Execute{Command: strings.TrimSpace(trimmed[cut+2:])},
	}, true
}

func stripQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
