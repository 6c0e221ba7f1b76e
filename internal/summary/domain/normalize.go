package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"
)

// ParseDraft decodes a summary in either accepted shape. When the input has a
// "content" object carrying a non-null "Overview", the sections are read from
// "content" (the stored-record shape); otherwise from the top level (the flat
// shape sent by the oracle and by edit requests).
func ParseDraft(raw []byte) (Draft, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return Draft{}, fmt.Errorf("summary must be a JSON object: %w", apperror.ErrInvalidSummary)
	}
	if top == nil {
		return Draft{}, fmt.Errorf("summary must be a JSON object: %w", apperror.ErrInvalidSummary)
	}

	container := raw
	if content, ok := top["content"]; ok {
		var inner map[string]json.RawMessage
		if json.Unmarshal(content, &inner) == nil {
			if overview, ok := inner["Overview"]; ok && !bytes.Equal(bytes.TrimSpace(overview), jsonNull) {
				container = content
			}
		}
	}

	var draft Draft
	if err := json.Unmarshal(container, &draft); err != nil {
		return Draft{}, fmt.Errorf("summary sections have the wrong type (%v): %w", err, apperror.ErrInvalidSummary)
	}
	return draft, nil
}

// Normalize fills every absent or null member of d with its default.
func Normalize(d Draft) Document {
	doc := EmptyDocument()

	if d.Overview.Has() {
		o := d.Overview.Value
		doc.Overview.Purpose = o.Purpose.Value
		doc.Overview.Conclusions = o.Conclusions.Value
		if o.KeyTopics.Has() {
			doc.Overview.KeyTopics = nonNil(o.KeyTopics.Value)
		}
	}
	if d.Notes.Has() {
		doc.Notes = nonNil(d.Notes.Value)
	}
	if d.ActionItems.Has() {
		doc.ActionItems = nonNil(d.ActionItems.Value)
	}
	if d.FollowUpEmail.Has() {
		doc.FollowUpEmail.To = d.FollowUpEmail.Value.To.Value
		doc.FollowUpEmail.Body = d.FollowUpEmail.Value.Body.Value
	}

	return doc
}

// NormalizeForCreate parses and normalizes a document that is about to
// become a new summary. It fails with ErrInvalidSummary when none of the
// four sections is present.
func NormalizeForCreate(raw []byte) (Document, error) {
	draft, err := ParseDraft(raw)
	if err != nil {
		return Document{}, err
	}
	if !draft.HasSection() {
		return Document{}, fmt.Errorf("summary must include at least one of Overview, Notes, ActionItems, FollowUpEmail: %w", apperror.ErrInvalidSummary)
	}
	return Normalize(draft), nil
}

// NormalizeStored reads a stored row back into canonical shape. No section
// gate applies on reads.
func NormalizeStored(raw []byte) (Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return EmptyDocument(), nil
	}
	draft, err := ParseDraft(raw)
	if err != nil {
		return Document{}, err
	}
	return Normalize(draft), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
