package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

type keyHint struct {
	keys, action string
	queue, save  bool // shown only with a multi-signal queue / a saveable signal
}

var keyHints = []keyHint{
	{keys: "space", action: "pause"},
	{keys: "r", action: "restart"},
	{keys: "m", action: "mode"},
	{keys: "+/-", action: "epicycles"},
	{keys: "v", action: "viz"},
	{keys: "a", action: "audio"},
	{keys: "n/p", action: "signal", queue: true},
	{keys: "R", action: "random", queue: true},
	{keys: "s", action: "shuffle", queue: true},
	{keys: "/", action: "open"},
	{keys: "w", action: "save", save: true},
	{keys: "q", action: "quit"},
}

func helpText(hasQueue bool, canSave bool) string {
	parts := make([]string, 0, len(keyHints))
	for _, h := range keyHints {
		if (h.queue && !hasQueue) || (h.save && !canSave) {
			continue
		}
		parts = append(parts, h.keys+" "+h.action)
	}
	return strings.Join(parts, "  ")
}
