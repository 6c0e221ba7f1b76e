package domain

// Merge applies a partial edit to a canonical document and returns a new
// canonical document. target is not modified.
//
// Per member of source:
//   - absent: the target value is kept;
//   - null: replaces the target value, which then takes its default;
//   - sequence: adopted only when non-empty, an empty one keeps the target;
//   - object: merged recursively;
//   - scalar: replaces the target value.
func Merge(target Document, source Draft) Document {
	out := cloneDocument(target)

	if source.Overview.Null {
		out.Overview = EmptyDocument().Overview
	} else if source.Overview.Present {
		out.Overview = mergeOverview(out.Overview, source.Overview.Value)
	}

	out.Notes = mergeSlice(out.Notes, source.Notes)
	out.ActionItems = mergeSlice(out.ActionItems, source.ActionItems)

	if source.FollowUpEmail.Null {
		out.FollowUpEmail = FollowUpEmail{}
	} else if source.FollowUpEmail.Present {
		out.FollowUpEmail = mergeFollowUpEmail(out.FollowUpEmail, source.FollowUpEmail.Value)
	}

	return out
}

func mergeOverview(target Overview, source OverviewDraft) Overview {
	return Overview{
		Purpose:     mergeScalar(target.Purpose, source.Purpose),
		KeyTopics:   mergeSlice(target.KeyTopics, source.KeyTopics),
		Conclusions: mergeScalar(target.Conclusions, source.Conclusions),
	}
}

func mergeFollowUpEmail(target FollowUpEmail, source FollowUpEmailDraft) FollowUpEmail {
	return FollowUpEmail{
		To:   mergeScalar(target.To, source.To),
		Body: mergeScalar(target.Body, source.Body),
	}
}

// mergeScalar: null yields the zero value.
func mergeScalar[T any](target T, source Optional[T]) T {
	if !source.Present {
		return target
	}
	return source.Value
}

// mergeSlice: an empty incoming sequence is "no change", null clears.
func mergeSlice[T any](target []T, source Optional[[]T]) []T {
	switch {
	case !source.Present:
		return target
	case source.Null:
		return []T{}
	case len(source.Value) == 0:
		return target
	default:
		return append([]T(nil), source.Value...)
	}
}

func cloneDocument(doc Document) Document {
	out := doc
	out.Overview.KeyTopics = append([]string{}, doc.Overview.KeyTopics...)
	out.Notes = append([]Note{}, doc.Notes...)
	out.ActionItems = append([]ActionItem{}, doc.ActionItems...)
	return out
}
