// Package presentation formats pipeline answers as markdown for
// terminal rendering.
package presentation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// FormatAnswer turns an answer into a markdown document: the answer
// text, one figures table per stage, any chart descriptors, and a
// provenance footer.
func FormatAnswer(ans *domain.Answer) string {
	var sb strings.Builder
	sb.WriteString(ans.Text)
	sb.WriteString("\n")

	for _, stage := range sortedKeys(ans.Figures) {
		figures := ans.Figures[stage]
		if len(figures) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n### Figures: %s\n\n", stage))
		sb.WriteString("| Figure | Value |\n|---|---|\n")
		for _, name := range sortedKeys(figures) {
			sb.WriteString(fmt.Sprintf("| %s | %.2f |\n", name, figures[name]))
		}
	}

	for _, viz := range ans.Visualizations {
		sb.WriteString(fmt.Sprintf("\n### %s (%s chart)\n\n", viz.Title, viz.Kind))
		header := "Label"
		if viz.XTitle != "" {
			header = viz.XTitle
		}
		value := "Value"
		if viz.YTitle != "" {
			value = viz.YTitle
		}
		sb.WriteString(fmt.Sprintf("| %s | %s |\n|---|---|\n", header, value))
		for _, p := range viz.Points {
			sb.WriteString(fmt.Sprintf("| %s | %.2f |\n", p.Label, p.Value))
		}
	}

	sb.WriteString(fmt.Sprintf("\n_Source: %s_\n", ans.Provenance))
	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
