package loam

// StepMetadata represents the frontmatter of a step file.
//
//	---
//	id: fetch
//	display_name: HTTP request
//	logo_url: https://cdn.example.com/http.svg
//	transitions:
//	  - store                      # shorthand for {to: store}
//	  - to: alert
//	    condition: status != 200
//	---
type StepMetadata struct {
	ID          string `json:"id" mapstructure:"id"`
	DisplayName string `json:"display_name" mapstructure:"display_name"`
	LogoURL     string `json:"logo_url" mapstructure:"logo_url"`

	// Next is sugar for a single unconditional transition, appended after
	// Transitions.
	Next string `json:"next" mapstructure:"next"`

	// Transitions holds strings (target IDs) or maps decoded as LoaderTransition.
	Transitions []any `json:"transitions" mapstructure:"transitions"`

	// General Metadata, flattened to dotted keys.
	Metadata map[string]any `json:"metadata" mapstructure:"metadata"`
}

// LoaderTransition is the map form of a transition.
type LoaderTransition struct {
	To        string `mapstructure:"to"`
	ToFull    string `mapstructure:"to_step_id"`
	Condition string `mapstructure:"condition"`
}
