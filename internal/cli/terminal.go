package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/bastiangx/typo/internal/utils"
	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/charmbracelet/lipgloss"
)

// Styles used for verdicts and listings.
var (
	okStyle = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	badStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	dimStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"})
)

// FormatVerdict renders one checked word with its suggestions, if any.
func FormatVerdict(word string, ok bool, suggestions []string) string {
	if ok {
		return fmt.Sprintf("%s %s", okStyle.Render("✓"), wordStyle.Render(word))
	}
	line := fmt.Sprintf("%s %s", badStyle.Render("✗"), wordStyle.Render(word))
	if len(suggestions) == 0 {
		return line + " " + dimStyle.Render("(no suggestions)")
	}
	return line + " → " + strings.Join(suggestions, ", ")
}

// FormatList renders words as a numbered list.
func FormatList(words []string) string {
	var b strings.Builder
	for i, w := range words {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, wordStyle.Render(w))
	}
	return b.String()
}

// FormatStats renders dictionary sizes.
func FormatStats(locale string, s dictionary.Stats) string {
	source := "loaded"
	if s.IsFallback {
		source = "fallback"
	}
	return fmt.Sprintf("%s %s\n  words:          %s\n  affix rules:    %s\n  compound rules: %s\n",
		okStyle.Render(locale), dimStyle.Render("("+source+")"),
		utils.FormatWithCommas(s.WordCount),
		utils.FormatWithCommas(s.AffixRuleCount),
		utils.FormatWithCommas(s.CompoundRuleCount))
}

// FormatTiming renders an elapsed time hint.
func FormatTiming(d time.Duration) string {
	return dimStyle.Render(fmt.Sprintf("took %v", d.Round(time.Microsecond)))
}
