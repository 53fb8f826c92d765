package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/stepmention/internal/presentation/graph"
	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/steps"
)

func TestGenerateMermaid(t *testing.T) {
	catalog := steps.NewCatalog(
		domain.StepMeta{Name: "trigger", DisplayName: "Every hour", IndexInTraversal: 1},
		domain.StepMeta{Name: "fetch", DisplayName: "HTTP \"GET\"", IndexInTraversal: 2},
		domain.StepMeta{Name: "flows/sub-flow", DisplayName: "Sub flow", IndexInTraversal: 3},
		domain.StepMeta{Name: "draft", DisplayName: "Draft"},
	)

	tests := []struct {
		name     string
		flow     []domain.Step
		catalog  *steps.Catalog
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name:    "Indexed Labels And Entry Shape",
			flow:    []domain.Step{{ID: "trigger"}, {ID: "fetch"}},
			catalog: catalog,
			contains: []string{
				"trigger((\"1. Every hour\"))",
				"fetch[\"2. HTTP 'GET'\"]",
			},
		},
		{
			name: "ID Sanitization",
			flow: []domain.Step{{ID: "path/to/file.md"}, {ID: "hyphen-ated", DisplayName: "Hyphen"}},
			contains: []string{
				"path_to_file_md[\"path/to/file.md\"]",
				"hyphen_ated[\"Hyphen\"]",
			},
			excludes: []string{"classDef"},
		},
		{
			name: "Transitions",
			flow: []domain.Step{{
				ID: "fetch",
				Transitions: []domain.Transition{
					{ToStepID: "store"},
					{ToStepID: "alert", Condition: "status == \"500\""},
					{ToStepID: "flows/sub-flow"},
				},
			}},
			catalog: catalog,
			contains: []string{
				"fetch --> store",
				"fetch -- \"status == '500'\" --> alert",
				"fetch -.-> flows_sub_flow",
			},
		},
		{
			name:    "Unreachable Steps",
			flow:    []domain.Step{{ID: "draft"}},
			catalog: catalog,
			contains: []string{
				"draft[\"Draft\"]",
				"class draft unreachable;",
			},
		},
		{
			name: "Metadata Overlay",
			flow: []domain.Step{{
				ID:       "fetch",
				Metadata: map[string]string{"http.url": "https://api.example.com", "http.method": "GET"},
			}},
			catalog: catalog,
			overlay: &graph.Overlay{Metadata: true},
			contains: []string{
				"fetch[\"2. HTTP 'GET'<br/>http.method: GET<br/>http.url: https://api.example.com\"]",
			},
			excludes: []string{"classDef mentioned"},
		},
		{
			name:     "Metadata Hidden By Default",
			flow:     []domain.Step{{ID: "fetch", Metadata: map[string]string{"http.method": "GET"}}},
			catalog:  catalog,
			excludes: []string{"http.method"},
		},
		{
			name:    "Mention Overlay",
			flow:    []domain.Step{{ID: "trigger"}, {ID: "fetch"}},
			catalog: catalog,
			overlay: &graph.Overlay{MentionedSteps: []string{"fetch", "fetch", ""}},
			contains: []string{
				"classDef mentioned",
				"class fetch mentioned;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.flow, tt.catalog, tt.overlay)
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("missing header:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q\nGot:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q\nGot:\n%s", unwanted, got)
				}
			}
			if strings.Count(got, "class fetch mentioned;") > 1 {
				t.Errorf("mentioned steps should be deduplicated:\n%s", got)
			}
		})
	}
}
