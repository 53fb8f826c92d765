package richtext

import (
	"encoding/json"
	"fmt"
)

// MentionAttrs is the payload embedded in a mention node.
type MentionAttrs struct {
	// LogoURL is the icon of the referenced step, empty when unknown.
	LogoURL string `json:"logoUrl,omitempty"`
	// DisplayText is the label shown to the user. It is derived and never
	// read back.
	DisplayText string `json:"displayText"`
	// ServerValue is the original {{...}} expression.
	ServerValue string `json:"serverValue"`
}

// EncodeMentionAttrs returns the JSON string stored in a mention label.
func EncodeMentionAttrs(attrs MentionAttrs) (string, error) {
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("failed to encode mention attributes: %w", err)
	}
	return string(b), nil
}

// DecodeMentionAttrs parses a mention label. Labels edited by hand or produced
// by other editors may not decode; those yield zero attributes instead of an
// error.
func DecodeMentionAttrs(label string) MentionAttrs {
	var attrs MentionAttrs
	if label == "" {
		return attrs
	}
	if err := json.Unmarshal([]byte(label), &attrs); err != nil {
		return MentionAttrs{}
	}
	return attrs
}
