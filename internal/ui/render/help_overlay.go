package render

import (
	statepkg "github.com/kk-code-lab/gfile/internal/state"
	textutil "github.com/kk-code-lab/gfile/internal/textutil"
)

// helpKeyColumn is the tab stop the descriptions are aligned to.
const helpKeyColumn = 20

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.NavState) []string {
	hiddenDesc := "Hide hidden files"
	if state != nil && state.HideHidden {
		hiddenDesc = "Show hidden files"
	}

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "←↓↑→ / h j k l", desc: "Move selection"},
				{keys: "Space / Enter", desc: "Move into the selected directory"},
				{keys: "a", desc: "Move to the parent directory"},
				{keys: "g / d", desc: "Select the first item (excluding . and ..)"},
				{keys: "G / c", desc: "Select the last item"},
			},
		},
		{
			title: "Actions",
			entries: []helpOverlayEntry{
				{keys: ".", desc: hiddenDesc},
				{keys: "s", desc: "Start $SHELL here"},
				{keys: "t", desc: "Start $TERMINAL here"},
				{keys: "f", desc: "Open selection with the system opener"},
				{keys: "!", desc: "Run a command on the selection"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q / Ctrl+C", desc: "Quit"},
				{keys: "H", desc: "Toggle this help"},
			},
		},
	}

	lines := make([]string, 0, 24)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}
	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return textutil.ExpandTabs("  "+key+"\t"+desc, helpKeyColumn)
}
