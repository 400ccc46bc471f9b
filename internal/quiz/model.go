// Package quiz holds the quiz state machine: question sequencing, the
// per-question answer lock, score accumulation and the final summary.
// It has no rendering knowledge and performs no I/O.
package quiz

import (
	"fmt"

	"quiz-screen/internal/domain"
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaiting
	PhaseLocked
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaiting:
		return "awaiting"
	case PhaseLocked:
		return "locked"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Model is one quiz session's state. It is not safe for concurrent use;
// callers serialise access.
type Model struct {
	questions []domain.Question
	started   bool
	index     int
	score     int
	locked    bool
}

// New returns an idle model over questions. It panics if the bank is empty
// or a question lacks exactly one correct answer: loaders validate authored
// data before it gets here.
func New(questions []domain.Question) *Model {
	if err := domain.ValidateQuestions(questions); err != nil {
		panic(fmt.Sprintf("quiz: %v", err))
	}
	return &Model{questions: questions}
}

// Start resets the session to the first question.
func (m *Model) Start() {
	m.started = true
	m.index = 0
	m.score = 0
	m.locked = false
}

// Restart is Start.
func (m *Model) Restart() {
	m.Start()
}

// Phase reports where the session is in its lifecycle.
func (m *Model) Phase() Phase {
	switch {
	case !m.started:
		return PhaseIdle
	case m.index >= len(m.questions):
		return PhaseFinished
	case m.locked:
		return PhaseLocked
	default:
		return PhaseAwaiting
	}
}

func (m *Model) Score() int   { return m.score }
func (m *Model) Locked() bool { return m.locked }
func (m *Model) Index() int   { return m.index }
func (m *Model) Total() int   { return len(m.questions) }

// CurrentQuestion returns the question at the current index.
func (m *Model) CurrentQuestion() domain.Question {
	m.mustBeActive("CurrentQuestion")
	return m.questions[m.index]
}

// RecordAnswer scores the answer at index for the current question and locks
// the question. While locked it does nothing and reports accepted=false, so
// repeated input before Advance cannot score twice.
func (m *Model) RecordAnswer(index int) (feedback domain.Feedback, accepted bool) {
	m.mustBeActive("RecordAnswer")
	if m.locked {
		return domain.Feedback{}, false
	}
	question := m.questions[m.index]
	if index < 0 || index >= len(question.Answers) {
		panic(fmt.Sprintf("quiz: RecordAnswer(%d) with %d answers", index, len(question.Answers)))
	}

	m.locked = true
	correct := question.Answers[index].Correct
	if correct {
		m.score++
	}

	answers := make([]domain.AnswerFeedback, len(question.Answers))
	for i, a := range question.Answers {
		answers[i] = domain.AnswerFeedback{Correct: a.Correct, Selected: i == index}
	}
	return domain.Feedback{
		QuestionIndex: m.index,
		Selected:      index,
		Correct:       correct,
		Answers:       answers,
	}, true
}

// Advance moves to the next question and clears the lock. It reports whether
// the quiz is now finished.
func (m *Model) Advance() bool {
	m.mustBeActive("Advance")
	m.index++
	m.locked = false
	return m.index == len(m.questions)
}

// Progress reports the position before the current question is answered.
func (m *Model) Progress() Progress {
	return Progress{Index: m.index, Total: len(m.questions)}
}

// FinalSummary reports the score and its qualitative tier.
func (m *Model) FinalSummary() domain.Summary {
	return Summarize(m.score, len(m.questions))
}

func (m *Model) mustBeActive(op string) {
	switch m.Phase() {
	case PhaseIdle:
		panic("quiz: " + op + " before Start")
	case PhaseFinished:
		panic("quiz: " + op + " after the last question")
	}
}

// Progress is the (index, total) pair behind the progress bar.
type Progress struct {
	Index int
	Total int
}

// Fraction is Index/Total; 0 on the first question, 1 only once finished.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Index) / float64(p.Total)
}

// Percent is Fraction scaled to 0..100.
func (p Progress) Percent() float64 {
	return p.Fraction() * 100
}
