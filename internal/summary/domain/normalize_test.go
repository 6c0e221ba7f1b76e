package domain

import (
	"encoding/json"
	"testing"

	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() Document {
	return Document{
		Overview: Overview{
			Purpose:     "Plan the Q3 launch",
			KeyTopics:   []string{"pricing", "timeline"},
			Conclusions: "Launch moves to September",
		},
		Notes:         []Note{{Theme: "Pricing", Details: "Keep the free tier"}},
		ActionItems:   []ActionItem{{Name: "Dana", Responsibility: "Draft the announcement"}},
		FollowUpEmail: FollowUpEmail{To: "Team", Body: "Thanks all"},
	}
}

func TestNormalize_FillsDefaults(t *testing.T) {
	doc, err := NormalizeForCreate([]byte(`{"Notes":[{"Theme":"t","Details":"d"}]}`))
	require.NoError(t, err)

	assert.Equal(t, "", doc.Overview.Purpose)
	assert.Equal(t, []string{}, doc.Overview.KeyTopics)
	assert.Equal(t, "", doc.Overview.Conclusions)
	assert.Equal(t, []ActionItem{}, doc.ActionItems)
	assert.Equal(t, FollowUpEmail{}, doc.FollowUpEmail)
	assert.Equal(t, []Note{{Theme: "t", Details: "d"}}, doc.Notes)

	encoded, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Overview":{"Purpose":"","KeyTopics":[],"Conclusions":""},
		"Notes":[{"Theme":"t","Details":"d"}],
		"ActionItems":[],
		"FollowUpEmail":{"To":"","Body":""}
	}`, string(encoded))
}

func TestNormalize_Idempotent(t *testing.T) {
	docs := []Document{fullDocument(), EmptyDocument()}
	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		require.NoError(t, err)

		once, err := NormalizeStored(raw)
		require.NoError(t, err)
		assert.Equal(t, doc, once)

		raw2, err := json.Marshal(once)
		require.NoError(t, err)
		twice, err := NormalizeStored(raw2)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalize_NestedContentShape(t *testing.T) {
	flat, err := json.Marshal(fullDocument())
	require.NoError(t, err)
	nested := []byte(`{"id":"s1","exchangeId":"e1","content":` + string(flat) + `}`)

	doc, err := NormalizeForCreate(nested)
	require.NoError(t, err)
	assert.Equal(t, fullDocument(), doc)
}

func TestNormalize_ContentWithoutOverviewIsFlat(t *testing.T) {
	raw := []byte(`{"content":{"Notes":[{"Theme":"x","Details":"y"}]},"ActionItems":[{"Name":"A","Responsibility":"r"}]}`)

	doc, err := NormalizeForCreate(raw)
	require.NoError(t, err)
	assert.Empty(t, doc.Notes)
	assert.Equal(t, []ActionItem{{Name: "A", Responsibility: "r"}}, doc.ActionItems)
}

func TestNormalize_RejectsNoSections(t *testing.T) {
	for _, raw := range []string{`{}`, `{"Summary":"hi"}`, `{"Overview":null,"Notes":null}`} {
		_, err := NormalizeForCreate([]byte(raw))
		assert.ErrorIs(t, err, apperror.ErrInvalidSummary, raw)
	}
}

func TestNormalize_RejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"text"`, `null`, `{`} {
		_, err := ParseDraft([]byte(raw))
		assert.ErrorIs(t, err, apperror.ErrInvalidSummary, raw)
	}
}

func TestNormalize_WrongSectionType(t *testing.T) {
	_, err := NormalizeForCreate([]byte(`{"Overview":{"Purpose":12}}`))
	assert.ErrorIs(t, err, apperror.ErrInvalidSummary)
}

func TestNormalize_NullMembersTakeDefaults(t *testing.T) {
	doc, err := NormalizeForCreate([]byte(`{"Overview":{"Purpose":null,"KeyTopics":null,"Conclusions":"done"},"Notes":null}`))
	require.NoError(t, err)

	assert.Equal(t, "", doc.Overview.Purpose)
	assert.Equal(t, []string{}, doc.Overview.KeyTopics)
	assert.Equal(t, "done", doc.Overview.Conclusions)
	assert.Equal(t, []Note{}, doc.Notes)
}

func TestNormalize_PlaceholderElements(t *testing.T) {
	doc, err := NormalizeForCreate([]byte(`{"Notes":[{"Theme":"a","Details":"b"},"...."],"ActionItems":["...."]}`))
	require.NoError(t, err)

	assert.Equal(t, []Note{{Theme: "a", Details: "b"}, {}}, doc.Notes)
	assert.Equal(t, []ActionItem{{}}, doc.ActionItems)
}

func TestNormalizeStored_EmptyRow(t *testing.T) {
	doc, err := NormalizeStored(nil)
	require.NoError(t, err)
	assert.Equal(t, EmptyDocument(), doc)
}
