package graph

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/steps"
)

// Overlay decorates the diagram.
type Overlay struct {
	// MentionedSteps are highlighted, e.g. the steps a document references.
	MentionedSteps []string

	// Metadata appends each step's metadata entries ("key: value", sorted
	// by key) to its node label.
	Metadata bool
}

// GenerateMermaid produces a Mermaid flowchart of the flow. Steps are
// labelled the way mentions label them ("<index>. <display name>"); the entry
// step (index 1) is drawn as a circle and unreachable steps are dashed.
func GenerateMermaid(flow []domain.Step, catalog *steps.Catalog, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var unreachable []string
	for _, step := range flow {
		safeID := sanitizeMermaidID(step.ID)

		meta, ok := catalog.Lookup(step.ID)
		label := step.Label()
		if ok && meta.HasIndex() {
			label = fmt.Sprintf("%d. %s", meta.IndexInTraversal, meta.DisplayName)
		} else if catalog != nil {
			unreachable = append(unreachable, safeID)
		}
		if overlay != nil && overlay.Metadata {
			label += metadataLines(step.Metadata)
		}
		label = strings.ReplaceAll(label, "\"", "'")

		opener, closer := "[", "]"
		if ok && meta.IndexInTraversal == 1 {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		for _, t := range step.Transitions {
			safeTo := sanitizeMermaidID(t.ToStepID)

			// Steps in another folder are drawn as jumps.
			isJump := path.Dir(step.ID) != path.Dir(t.ToStepID)

			arrow := "-->"
			if isJump {
				arrow = "-.->"
			}
			if t.Condition != "" {
				safeCondition := strings.ReplaceAll(t.Condition, "\"", "'")
				arrow = fmt.Sprintf("-- \"%s\" -->", safeCondition)
				if isJump {
					arrow = fmt.Sprintf("-. \"%s\" .->", safeCondition)
				}
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
		}
	}

	if len(unreachable) > 0 || (overlay != nil && len(overlay.MentionedSteps) > 0) {
		sb.WriteString("\n    %% Styles\n")
	}
	if len(unreachable) > 0 {
		sb.WriteString("    classDef unreachable stroke-dasharray:5 5,color:#888;\n")
		for _, id := range unreachable {
			sb.WriteString(fmt.Sprintf("    class %s unreachable;\n", id))
		}
	}
	if overlay != nil && len(overlay.MentionedSteps) > 0 {
		// Force black text (color:#000) for contrast regardless of theme.
		sb.WriteString("    classDef mentioned fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		seen := make(map[string]bool)
		for _, id := range overlay.MentionedSteps {
			safeID := sanitizeMermaidID(id)
			if safeID == "" || seen[safeID] {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s mentioned;\n", safeID))
		}
	}

	return sb.String()
}

func metadataLines(md map[string]string) string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString("<br/>")
		sb.WriteString(k + ": " + md[k])
	}
	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
