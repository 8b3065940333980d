// Package graph renders pipeline decision traces as Mermaid flowcharts,
// mainly for debugging routing behaviour.
package graph

import (
	"fmt"
	"strings"
)

// GenerateMermaid produces a Mermaid flowchart from an ordered decision
// trace. The query is the entry circle, each routed stage a rectangle,
// and the final stage is highlighted.
func GenerateMermaid(trace []string) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    query((\"query\"))\n")

	prev := "query"
	for i, stage := range trace {
		safeID := sanitizeMermaidID(fmt.Sprintf("s%d_%s", i, stage))
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, stage))
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, safeID))
		prev = safeID
	}

	if len(trace) > 0 {
		sb.WriteString("\n    classDef final fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s final;\n", prev))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
