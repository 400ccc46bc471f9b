package app

import (
	"context"
	"fmt"
	"time"

	"quiz-screen/internal/domain"

	"github.com/google/uuid"
)

// SessionRepository abstracts where open quiz sessions live (in-memory, Redis, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// QuizService contains the quiz use cases for views: open a session, send it
// user intent, follow its screens, close it.
type QuizService struct {
	sessions  SessionRepository
	quizzes   QuizRepository
	scheduler Scheduler
	delay     time.Duration
	newID     func() string
}

// Option customises a QuizService.
type Option func(*QuizService)

// WithScheduler replaces the timer-based scheduler of post-answer advances.
func WithScheduler(scheduler Scheduler) Option {
	return func(s *QuizService) { s.scheduler = scheduler }
}

// WithAdvanceDelay sets how long the answered screen stays up.
func WithAdvanceDelay(delay time.Duration) Option {
	return func(s *QuizService) { s.delay = delay }
}

// WithIDGenerator is test-only for deterministic session IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *QuizService) { s.newID = newID }
}

func NewQuizService(store SessionRepository, quizzes QuizRepository, opts ...Option) *QuizService {
	s := &QuizService{
		sessions:  store,
		quizzes:   quizzes,
		scheduler: TimerScheduler{},
		delay:     DefaultAdvanceDelay,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates an idle session over quizID. Authored data is validated here
// so the session's model never sees a malformed bank.
func (s *QuizService) Open(ctx context.Context, quizID string) (*Session, error) {
	q, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("quiz %s: %w", quizID, err)
	}
	if q.ID == "" {
		q.ID = quizID
	}

	session := NewSession(s.newID(), q, s.scheduler, s.delay)
	s.sessions.Put(session)
	return session, nil
}

// Session looks up an open session.
func (s *QuizService) Session(_ context.Context, sessionID string) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Start begins (or restarts) the quiz of a session.
func (s *QuizService) Start(ctx context.Context, sessionID string) (domain.Screen, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return domain.Screen{}, err
	}
	return session.Start(), nil
}

// Restart is Start; kept separate so views can map their restart button to it.
func (s *QuizService) Restart(ctx context.Context, sessionID string) (domain.Screen, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return domain.Screen{}, err
	}
	return session.Restart(), nil
}

// SelectAnswer records an answer for the current question of a session.
func (s *QuizService) SelectAnswer(ctx context.Context, sessionID string, index int) (domain.Screen, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return domain.Screen{}, err
	}
	return session.SelectAnswer(index)
}

// Subscribe returns a channel that receives screen updates for a session.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *QuizService) Subscribe(ctx context.Context, sessionID string) (<-chan domain.Screen, func(), error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := session.Subscribe()
	return ch, cancel, nil
}

// Close ends a session and forgets it.
func (s *QuizService) Close(_ context.Context, sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.Close()
	s.sessions.Delete(sessionID)
}
