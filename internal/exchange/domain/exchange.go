package domain

import "time"

// Exchange is a recorded multi-speaker conversation. Messages keep their
// creation order through Seq.
type Exchange struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Messages  []Message `json:"messages,omitempty" gorm:"foreignKey:ExchangeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Exchange) TableName() string {
	return "exchanges"
}

type Message struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Text       string    `json:"text" gorm:"type:text"`
	Speaker    string    `json:"speaker"`
	SpeakerID  int       `json:"speakerId"`
	ExchangeID string    `json:"exchangeId" gorm:"index:idx_message_exchange_seq;not null"`
	Seq        int       `json:"-" gorm:"index:idx_message_exchange_seq"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// Segment is one speaker turn, the unit a transcript is built from.
type Segment struct {
	Speaker   string
	SpeakerID int
	Text      string
}

// Segments returns the exchange's messages as ordered speaker turns.
func (e *Exchange) Segments() []Segment {
	segments := make([]Segment, 0, len(e.Messages))
	for _, m := range e.Messages {
		segments = append(segments, Segment{Speaker: m.Speaker, SpeakerID: m.SpeakerID, Text: m.Text})
	}
	return segments
}

// Speakers returns the distinct non-empty speaker names in order of first appearance.
func (e *Exchange) Speakers() []string {
	seen := make(map[string]struct{})
	var speakers []string
	for _, m := range e.Messages {
		if m.Speaker == "" {
			continue
		}
		if _, ok := seen[m.Speaker]; ok {
			continue
		}
		seen[m.Speaker] = struct{}{}
		speakers = append(speakers, m.Speaker)
	}
	return speakers
}

// SearchCandidate is an exchange header plus its speakers, enough to rank it
// against a search query without loading every message.
type SearchCandidate struct {
	Exchange *Exchange
	Speakers []string
}
