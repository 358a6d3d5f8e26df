// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

// RuleInfo is the display form of one rewrite rule, used by the rules
// command for text, YAML, and JSON output.
type RuleInfo struct {
	Macro   string `json:"macro" yaml:"macro"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Example string `json:"example" yaml:"example"`
	Summary string `json:"summary" yaml:"summary"`
}

// Describe returns the rule table in application order.
func Describe() []RuleInfo {
	infos := make([]RuleInfo, len(Rules))
	for i, r := range Rules {
		infos[i] = RuleInfo{
			Macro:   r.Macro,
			Pattern: r.Pattern(),
			Example: r.Example(),
			Summary: r.Summary,
		}
	}
	return infos
}
