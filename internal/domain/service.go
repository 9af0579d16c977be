// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"
	"log"

	"github.com/djerroudsalim/studious-octo-winner/internal/observability"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the roster.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrNotSignedUp indicates the student is not on the roster.
	ErrNotSignedUp = errors.New("student not signed up")
)

// ActivityRepository captures roster storage operations. Implementations must
// make each mutation a single atomic check-then-mutate step.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (int, error)
	RemoveParticipant(ctx context.Context, name, email string) (int, error)
}

// RosterEvent describes a roster change emitted after a successful mutation.
type RosterEvent struct {
	Type       string
	Activity   string
	Email      string
	RosterSize int
}

// Roster event types.
const (
	EventSignedUp     = "roster.signed_up"
	EventUnregistered = "roster.unregistered"
)

// EventPublisher delivers roster events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event RosterEvent) error
}

// Service orchestrates roster workflows.
type Service struct {
	repo      ActivityRepository
	publisher EventPublisher
	logger    *log.Logger
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithPublisher attaches an event publisher for roster changes.
func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithLogger overrides the logger used to report publish failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService constructs a Service.
func NewService(repo ActivityRepository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: log.New(log.Writer(), "[roster] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns the full activity roster keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup enrolls email in the named activity. Capacity is advisory and never
// checked here.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	size, err := s.repo.AddParticipant(ctx, name, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}
	observability.RecordSignup(name, size)
	s.publish(ctx, RosterEvent{
		Type:       EventSignedUp,
		Activity:   name,
		Email:      email,
		RosterSize: size,
	})
	return nil
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	size, err := s.repo.RemoveParticipant(ctx, name, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}
	observability.RecordUnregister(name, size)
	s.publish(ctx, RosterEvent{
		Type:       EventUnregistered,
		Activity:   name,
		Email:      email,
		RosterSize: size,
	})
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrNotSignedUp):
		return "not_signed_up"
	default:
		return "error"
	}
}

// publish is best-effort: a delivery failure never fails the roster mutation.
func (s *Service) publish(ctx context.Context, event RosterEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Printf("publish error (event_type=%s, activity=%s): %v", event.Type, event.Activity, err)
	}
}
