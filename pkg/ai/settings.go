package ai

import "sync"

// RuntimeSettings holds oracle settings that can change without a restart.
// Empty values mean "use the static configuration".
type RuntimeSettings struct {
	mu            sync.RWMutex
	model         string
	ollamaBaseURL string
}

func NewRuntimeSettings(model, ollamaBaseURL string) *RuntimeSettings {
	return &RuntimeSettings{model: model, ollamaBaseURL: ollamaBaseURL}
}

func (s *RuntimeSettings) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *RuntimeSettings) OllamaBaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ollamaBaseURL
}

// Update replaces the non-empty fields.
func (s *RuntimeSettings) Update(model, ollamaBaseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if model != "" {
		s.model = model
	}
	if ollamaBaseURL != "" {
		s.ollamaBaseURL = ollamaBaseURL
	}
}
