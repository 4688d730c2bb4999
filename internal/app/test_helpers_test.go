package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/scriptsplit/internal/core/script"
	"github.com/example/scriptsplit/internal/ports/secondary"
)

// Ensure mockSessionRepository implements the interface
var _ secondary.SessionRepository = (*mockSessionRepository)(nil)

// mockSessionRepository implements secondary.SessionRepository for
// testing. Slots live in a map; saveErr forces failures.
type mockSessionRepository struct {
	slots   map[string]string
	saveErr error
	loadErr error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{slots: make(map[string]string)}
}

func (m *mockSessionRepository) Save(ctx context.Context, slot, payload string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.slots[slot] = payload
	return nil
}

func (m *mockSessionRepository) Load(ctx context.Context, slot string) (string, bool, error) {
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	payload, ok := m.slots[slot]
	return payload, ok, nil
}

func (m *mockSessionRepository) Clear(ctx context.Context) error {
	m.slots = make(map[string]string)
	return nil
}

// newTestService builds a service over a fresh seeded store with an
// in-memory session repository and a short debounce window.
func newTestService(t *testing.T) (*OrganizationServiceImpl, *mockSessionRepository) {
	t.Helper()
	sessions := newMockSessionRepository()
	store := NewStore(script.NewMicroscopy())
	svc := NewOrganizationService(store, sessions, 10*time.Millisecond)
	return svc, sessions
}
