package nav

import (
	"fmt"
	"strings"
)

// Validate checks every node in the tree for structural defects and returns
// one human-readable finding per defect. Findings are advisory: an empty
// result means the tree is well-formed, a non-empty one is for the caller to
// display or block on. Validate never mutates its input.
func Validate(t Tree) []string {
	var findings []string
	validateLevel(t, "", &findings)
	return findings
}

func validateLevel(nodes Tree, context string, findings *[]string) {
	for i, n := range nodes {
		ref := fmt.Sprintf("%s[%d]", n.Label, i)
		if context != "" {
			ref = context + " > " + ref
		}
		if strings.TrimSpace(n.Label) == "" {
			*findings = append(*findings, fmt.Sprintf("%s: label is empty", ref))
		}
		if strings.TrimSpace(n.Href) == "" {
			*findings = append(*findings, fmt.Sprintf("%s: href is empty (item %q)", ref, n.Label))
		}
		validateLevel(n.Children, ref, findings)
	}
}
