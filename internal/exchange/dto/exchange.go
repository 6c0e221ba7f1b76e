package dto

import (
	"strings"

	exchangedomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
)

type Word struct {
	Text string `json:"text"`
}

// SegmentRequest is one transcript segment as produced by the recorder.
type SegmentRequest struct {
	Words     []Word `json:"words" binding:"required"`
	Speaker   string `json:"speaker"`
	SpeakerID int    `json:"speaker_id"`
}

type CreateExchangeRequest struct {
	Title   string           `json:"title" binding:"required"`
	Content []SegmentRequest `json:"content" binding:"required,dive"`
}

// ToSegments concatenates each segment's words, with no separator, into the
// message text.
func (r *CreateExchangeRequest) ToSegments() []exchangedomain.Segment {
	segments := make([]exchangedomain.Segment, 0, len(r.Content))
	for _, seg := range r.Content {
		var text strings.Builder
		for _, w := range seg.Words {
			text.WriteString(w.Text)
		}
		segments = append(segments, exchangedomain.Segment{
			Speaker:   seg.Speaker,
			SpeakerID: seg.SpeakerID,
			Text:      text.String(),
		})
	}
	return segments
}
