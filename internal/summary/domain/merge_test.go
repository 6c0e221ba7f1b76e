package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDraft(t *testing.T, raw string) Draft {
	t.Helper()
	d, err := ParseDraft([]byte(raw))
	require.NoError(t, err)
	return d
}

func TestMerge_ScalarReplace(t *testing.T) {
	target := fullDocument()
	target.Overview.Purpose = "A"

	merged := Merge(target, mustDraft(t, `{"Overview":{"Purpose":"B"}}`))

	assert.Equal(t, "B", merged.Overview.Purpose)
	assert.Equal(t, target.Overview.KeyTopics, merged.Overview.KeyTopics)
	assert.Equal(t, target.Overview.Conclusions, merged.Overview.Conclusions)
}

func TestMerge_EmptyArrayPreserved(t *testing.T) {
	target := fullDocument()
	target.Notes = []Note{{Theme: "x", Details: "y"}}

	merged := Merge(target, mustDraft(t, `{"Notes":[]}`))

	assert.Equal(t, []Note{{Theme: "x", Details: "y"}}, merged.Notes)
}

func TestMerge_NonEmptyArrayReplaces(t *testing.T) {
	target := fullDocument()
	target.ActionItems = []ActionItem{{Name: "A", Responsibility: "r1"}}

	merged := Merge(target, mustDraft(t, `{"ActionItems":[{"Name":"B","Responsibility":"r2"}]}`))

	assert.Equal(t, []ActionItem{{Name: "B", Responsibility: "r2"}}, merged.ActionItems)
}

func TestMerge_NestedArrayRules(t *testing.T) {
	target := fullDocument()

	kept := Merge(target, mustDraft(t, `{"Overview":{"KeyTopics":[]}}`))
	assert.Equal(t, []string{"pricing", "timeline"}, kept.Overview.KeyTopics)

	replaced := Merge(target, mustDraft(t, `{"Overview":{"KeyTopics":["hiring"]}}`))
	assert.Equal(t, []string{"hiring"}, replaced.Overview.KeyTopics)
	assert.Equal(t, target.Overview.Purpose, replaced.Overview.Purpose)
}

func TestMerge_OnlyFollowUpBodyChanges(t *testing.T) {
	target := fullDocument()

	merged := Merge(target, mustDraft(t, `{"FollowUpEmail":{"Body":"Updated body"}}`))

	assert.Equal(t, "Updated body", merged.FollowUpEmail.Body)
	assert.Equal(t, "Team", merged.FollowUpEmail.To)
	assert.Equal(t, target.Overview, merged.Overview)
	assert.Equal(t, target.Notes, merged.Notes)
	assert.Equal(t, target.ActionItems, merged.ActionItems)
}

func TestMerge_NullResetsToDefault(t *testing.T) {
	target := fullDocument()

	merged := Merge(target, mustDraft(t, `{"Notes":null,"FollowUpEmail":{"To":null},"Overview":null}`))

	assert.Equal(t, []Note{}, merged.Notes)
	assert.Equal(t, "", merged.FollowUpEmail.To)
	assert.Equal(t, "Thanks all", merged.FollowUpEmail.Body)
	assert.Equal(t, EmptyDocument().Overview, merged.Overview)
	assert.Equal(t, target.ActionItems, merged.ActionItems)
}

func TestMerge_EmptyStringReplaces(t *testing.T) {
	merged := Merge(fullDocument(), mustDraft(t, `{"Overview":{"Conclusions":""}}`))
	assert.Equal(t, "", merged.Overview.Conclusions)
}

func TestMerge_EmptySourceIsIdentity(t *testing.T) {
	target := fullDocument()
	assert.Equal(t, target, Merge(target, Draft{}))
	assert.Equal(t, target, Merge(target, DraftOf(target)))
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	target := fullDocument()
	source := mustDraft(t, `{"Notes":[{"Theme":"n","Details":"d"}]}`)

	merged := Merge(target, source)
	merged.Notes[0].Theme = "mutated"
	merged.Overview.KeyTopics[0] = "mutated"

	assert.Equal(t, "n", source.Notes.Value[0].Theme)
	assert.Equal(t, "pricing", target.Overview.KeyTopics[0])
}

func TestMerge_ResultIsCanonical(t *testing.T) {
	merged := Merge(EmptyDocument(), mustDraft(t, `{"Overview":{"Purpose":"p"}}`))

	assert.NotNil(t, merged.Notes)
	assert.NotNil(t, merged.ActionItems)
	assert.NotNil(t, merged.Overview.KeyTopics)
}
