package app

import (
	"sync"
	"time"

	"quiz-screen/internal/domain"
	"quiz-screen/internal/quiz"
)

// DefaultAdvanceDelay is how long the answered screen stays up before the
// next question is shown.
const DefaultAdvanceDelay = time.Second

// Session drives one quiz run: it forwards user intent into a quiz.Model,
// schedules the delayed advance, and publishes the resulting screens.
type Session struct {
	id        string
	quiz      domain.Quiz
	scheduler Scheduler
	delay     time.Duration

	mu          sync.Mutex
	model       *quiz.Model
	feedback    *domain.Feedback
	pending     Task
	generation  uint64
	closed      bool
	subscribers map[chan domain.Screen]struct{}
}

// NewSession is exported for infrastructure layers and views that drive a
// session directly. It panics if q is not a valid question bank.
func NewSession(id string, q domain.Quiz, scheduler Scheduler, delay time.Duration) *Session {
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	if delay < 0 {
		delay = 0
	}
	return &Session{
		id:          id,
		quiz:        q,
		scheduler:   scheduler,
		delay:       delay,
		model:       quiz.New(q.Questions),
		subscribers: make(map[chan domain.Screen]struct{}),
	}
}

func (s *Session) ID() string     { return s.id }
func (s *Session) QuizID() string { return s.quiz.ID }

// Start resets the quiz and shows question 1. Any pending advance from a
// previous run is dropped.
func (s *Session) Start() domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.model.Start()
	s.feedback = nil
	return s.broadcastLocked()
}

// Restart is Start.
func (s *Session) Restart() domain.Screen {
	return s.Start()
}

// SelectAnswer records the answer at index for the current question. Input
// arriving while the question is locked is ignored and the current screen is
// returned unchanged.
func (s *Session) SelectAnswer(index int) (domain.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.model.Phase() {
	case quiz.PhaseIdle:
		return s.snapshotLocked(), domain.ErrQuizNotStarted
	case quiz.PhaseFinished:
		return s.snapshotLocked(), domain.ErrQuizFinished
	case quiz.PhaseLocked:
		return s.snapshotLocked(), nil
	}
	if index < 0 || index >= len(s.model.CurrentQuestion().Answers) {
		return s.snapshotLocked(), domain.ErrAnswerOutOfRange
	}

	feedback, accepted := s.model.RecordAnswer(index)
	if !accepted {
		return s.snapshotLocked(), nil
	}
	s.feedback = &feedback
	screen := s.broadcastLocked()

	// The answered screen is out before the advance can be scheduled.
	generation := s.generation
	s.pending = s.scheduler.AfterFunc(s.delay, func() {
		s.advance(generation)
	})
	return screen, nil
}

func (s *Session) advance(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation || s.model.Phase() != quiz.PhaseLocked {
		return
	}
	s.pending = nil
	s.feedback = nil
	s.model.Advance()
	s.broadcastLocked()
}

// Snapshot returns the screen for the current state without side effects.
func (s *Session) Snapshot() domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Score is the number of correct answers so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Score()
}

// Locked reports whether the current question is waiting for its advance.
func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Locked()
}

// Subscribe returns a channel that receives every screen change, starting
// with the current one. The caller must invoke the returned cancel function
// to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.Screen, func()) {
	ch := make(chan domain.Screen, 8)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close drops any pending advance and closes all subscriber channels.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.cancelPendingLocked()
	s.closed = true
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

// cancelPendingLocked invalidates the scheduled advance. The generation bump
// covers a callback that already fired and is waiting on mu.
func (s *Session) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	s.generation++
}

func (s *Session) broadcastLocked() domain.Screen {
	screen := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- screen:
		default:
			// Slow subscriber: drop the oldest screen so the latest always lands.
			select {
			case <-ch:
			default:
			}
			ch <- screen
		}
	}
	return screen
}

func (s *Session) snapshotLocked() domain.Screen {
	progress := s.model.Progress()
	screen := domain.Screen{
		SessionID: s.id,
		QuizID:    s.quiz.ID,
		Title:     s.quiz.Title,
		Total:     progress.Total,
		Score:     s.model.Score(),
		Progress:  progress.Percent(),
	}

	switch s.model.Phase() {
	case quiz.PhaseIdle:
		screen.Kind = domain.ScreenStart
	case quiz.PhaseFinished:
		screen.Kind = domain.ScreenResults
		summary := s.model.FinalSummary()
		screen.Summary = &summary
	default:
		question := s.model.CurrentQuestion()
		screen.Kind = domain.ScreenQuestion
		screen.Number = progress.Index + 1
		screen.Question = question.Text
		screen.Answers = make([]string, len(question.Answers))
		for i, a := range question.Answers {
			screen.Answers[i] = a.Text
		}
		if s.model.Locked() && s.feedback != nil {
			screen.Kind = domain.ScreenAnswered
			feedback := *s.feedback
			screen.Feedback = &feedback
		}
	}
	return screen
}
