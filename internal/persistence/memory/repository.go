// Package memory provides the in-memory roster store backing the activities
// service. The store lives for the process lifetime and resets to the seed set
// on restart.
package memory

import (
	"context"
	"sync"

	"github.com/djerroudsalim/studious-octo-winner/internal/domain"
)

// Repository holds the activity roster guarded by a read-write mutex. Every
// mutation is a single check-then-mutate step under the write lock.
type Repository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewRepository constructs a Repository populated with the seed activities.
func NewRepository() *Repository {
	return NewRepositoryWith(SeedActivities())
}

// NewRepositoryWith constructs a Repository from the provided activities,
// keyed by name. Useful for tests that need a custom roster.
func NewRepositoryWith(activities []domain.Activity) *Repository {
	store := make(map[string]*domain.Activity, len(activities))
	for _, act := range activities {
		clone := act.Clone()
		store[act.Name] = &clone
	}
	return &Repository{activities: store}
}

// List returns a deep copy of the full store keyed by activity name.
func (r *Repository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, act := range r.activities {
		out[name] = act.Clone()
	}
	return out, nil
}

// Get returns a copy of the named activity or domain.ErrActivityNotFound.
func (r *Repository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	act, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	clone := act.Clone()
	return &clone, nil
}

// AddParticipant appends email to the named activity's roster and returns the
// new roster size. The roster may legitimately grow beyond MaxParticipants;
// capacity is advisory and deliberately not enforced here.
func (r *Repository) AddParticipant(ctx context.Context, name, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	if act.HasParticipant(email) {
		return 0, domain.ErrAlreadySignedUp
	}
	act.Participants = append(act.Participants, email)
	return len(act.Participants), nil
}

// RemoveParticipant removes email from the named activity's roster and returns
// the new roster size.
func (r *Repository) RemoveParticipant(ctx context.Context, name, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return len(act.Participants), nil
		}
	}
	return 0, domain.ErrNotSignedUp
}
