package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_WellFormedTree(t *testing.T) {
	assert.Empty(t, Validate(sampleTree()))
}

func TestValidate_EmptyLabelAndHref(t *testing.T) {
	findings := Validate(Tree{{Label: "", Href: ""}})
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0], "label is empty")
	assert.Contains(t, findings[1], "href is empty")
}

func TestValidate_WhitespaceOnlyCountsAsEmpty(t *testing.T) {
	findings := Validate(Tree{{Label: "  \t", Href: " "}})
	assert.Len(t, findings, 2)
}

func TestValidate_NestedContextPath(t *testing.T) {
	tree := Tree{
		{Label: "Home", Href: "/"},
		{
			Label: "About", Href: "/about",
			Children: Tree{
				{Label: "Team", Href: "/team", Children: Tree{
					{Label: "", Href: "/x"},
				}},
			},
		},
	}

	findings := Validate(tree)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "About[1] > Team[0] > [0]")
	assert.Contains(t, findings[0], "label is empty")
}

func TestValidate_HrefFindingReferencesLabel(t *testing.T) {
	findings := Validate(Tree{{Label: "Careers", Href: ""}})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], `"Careers"`)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	tree := Tree{{Label: "", Href: "", Children: Tree{{Label: "ok", Href: "/ok"}}}}
	before := tree.Clone()
	_ = Validate(tree)
	assert.Equal(t, before, tree)
}
