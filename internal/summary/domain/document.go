package domain

import (
	"bytes"
	"encoding/json"
)

// Document is the canonical summary: all four sections present, slices
// never nil.
type Document struct {
	Overview      Overview      `json:"Overview"`
	Notes         []Note        `json:"Notes"`
	ActionItems   []ActionItem  `json:"ActionItems"`
	FollowUpEmail FollowUpEmail `json:"FollowUpEmail"`
}

type Overview struct {
	Purpose     string   `json:"Purpose"`
	KeyTopics   []string `json:"KeyTopics"`
	Conclusions string   `json:"Conclusions"`
}

type Note struct {
	Theme   string `json:"Theme"`
	Details string `json:"Details"`
}

type ActionItem struct {
	Name           string `json:"Name"`
	Responsibility string `json:"Responsibility"`
}

type FollowUpEmail struct {
	To   string `json:"To"`
	Body string `json:"Body"`
}

// UnmarshalJSON decodes non-object elements (placeholders such as "...."
// that models copy from the prompt) as an empty note.
func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	var p plain
	if !isJSONObject(data) {
		*n = Note{}
		return nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*n = Note(p)
	return nil
}

// UnmarshalJSON mirrors Note.UnmarshalJSON.
func (a *ActionItem) UnmarshalJSON(data []byte) error {
	type plain ActionItem
	var p plain
	if !isJSONObject(data) {
		*a = ActionItem{}
		return nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = ActionItem(p)
	return nil
}

func isJSONObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// EmptyDocument returns the canonical document with every default filled in.
func EmptyDocument() Document {
	return Document{
		Overview:      Overview{KeyTopics: []string{}},
		Notes:         []Note{},
		ActionItems:   []ActionItem{},
		FollowUpEmail: FollowUpEmail{},
	}
}

// Draft is a summary document as received from an untrusted producer: the
// oracle, an edit request, or a stored row. Every member is optional.
type Draft struct {
	Overview      Optional[OverviewDraft]      `json:"Overview"`
	Notes         Optional[[]Note]             `json:"Notes"`
	ActionItems   Optional[[]ActionItem]       `json:"ActionItems"`
	FollowUpEmail Optional[FollowUpEmailDraft] `json:"FollowUpEmail"`
}

type OverviewDraft struct {
	Purpose     Optional[string]   `json:"Purpose"`
	KeyTopics   Optional[[]string] `json:"KeyTopics"`
	Conclusions Optional[string]   `json:"Conclusions"`
}

type FollowUpEmailDraft struct {
	To   Optional[string] `json:"To"`
	Body Optional[string] `json:"Body"`
}

// HasSection reports whether at least one of the four sections carries a value.
func (d Draft) HasSection() bool {
	return d.Overview.Has() || d.Notes.Has() || d.ActionItems.Has() || d.FollowUpEmail.Has()
}

// DraftOf lifts a canonical document into a draft with every member set.
func DraftOf(doc Document) Draft {
	return Draft{
		Overview: Some(OverviewDraft{
			Purpose:     Some(doc.Overview.Purpose),
			KeyTopics:   Some(doc.Overview.KeyTopics),
			Conclusions: Some(doc.Overview.Conclusions),
		}),
		Notes:       Some(doc.Notes),
		ActionItems: Some(doc.ActionItems),
		FollowUpEmail: Some(FollowUpEmailDraft{
			To:   Some(doc.FollowUpEmail.To),
			Body: Some(doc.FollowUpEmail.Body),
		}),
	}
}
