package domain

import "time"

// View is a stored summary read back in canonical shape. The document
// sections are inlined next to the identifiers when encoded.
type View struct {
	ID         string `json:"id"`
	ExchangeID string `json:"exchangeId"`
	Document
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewView normalizes a stored summary row.
func NewView(s *Summary) (*View, error) {
	doc, err := NormalizeStored(s.Content)
	if err != nil {
		return nil, err
	}
	return &View{
		ID:         s.ID,
		ExchangeID: s.ExchangeID,
		Document:   doc,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}, nil
}
