package quiz_test

import (
	"testing"

	"quiz-screen/internal/domain"
	"quiz-screen/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartResetsState(t *testing.T) {
	m := quiz.New(fiveQuestions())
	require.Equal(t, quiz.PhaseIdle, m.Phase())

	m.Start()
	assert.Equal(t, quiz.PhaseAwaiting, m.Phase())
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 0, m.Score())
	assert.False(t, m.Locked())
	assert.Equal(t, "Q1", m.CurrentQuestion().Text)
}

func TestRecordAnswerScoresAndLocks(t *testing.T) {
	m := quiz.New(fiveQuestions())
	m.Start()

	feedback, accepted := m.RecordAnswer(2)
	require.True(t, accepted)
	assert.True(t, feedback.Correct)
	assert.Equal(t, 2, feedback.Selected)
	assert.Equal(t, 1, m.Score())
	assert.True(t, m.Locked())
	assert.Equal(t, quiz.PhaseLocked, m.Phase())
	require.Len(t, feedback.Answers, 4)
	assert.Equal(t, domain.AnswerFeedback{Correct: true, Selected: true}, feedback.Answers[2])
	assert.Equal(t, domain.AnswerFeedback{}, feedback.Answers[0])
}

func TestWrongAnswerReportsBothCorrectAndSelected(t *testing.T) {
	m := quiz.New(fiveQuestions())
	m.Start()

	feedback, accepted := m.RecordAnswer(0)
	require.True(t, accepted)
	assert.False(t, feedback.Correct)
	assert.Equal(t, 0, m.Score())
	assert.Equal(t, domain.AnswerFeedback{Correct: false, Selected: true}, feedback.Answers[0])
	assert.Equal(t, domain.AnswerFeedback{Correct: true, Selected: false}, feedback.Answers[2])
}

func TestRecordAnswerIgnoredWhileLocked(t *testing.T) {
	m := quiz.New(fiveQuestions())
	m.Start()

	_, accepted := m.RecordAnswer(2)
	require.True(t, accepted)
	for i := 0; i < 3; i++ {
		_, accepted = m.RecordAnswer(2)
		assert.False(t, accepted)
	}
	assert.Equal(t, 1, m.Score())

	// even an out-of-range index is a no-op while locked
	_, accepted = m.RecordAnswer(99)
	assert.False(t, accepted)
}

func TestAdvanceReachesFinishedExactlyOnce(t *testing.T) {
	questions := fiveQuestions()
	m := quiz.New(questions)
	m.Start()

	finishedCount := 0
	for i := 0; i < len(questions); i++ {
		if m.Advance() {
			finishedCount++
		}
	}
	assert.Equal(t, 1, finishedCount)
	assert.Equal(t, quiz.PhaseFinished, m.Phase())
	assert.Equal(t, len(questions), m.Index())
	assert.Panics(t, func() { m.Advance() })
}

func TestAdvanceClearsLock(t *testing.T) {
	m := quiz.New(fiveQuestions())
	m.Start()
	m.RecordAnswer(1)

	finished := m.Advance()
	assert.False(t, finished)
	assert.False(t, m.Locked())
	assert.Equal(t, quiz.PhaseAwaiting, m.Phase())
	assert.Equal(t, "Q2", m.CurrentQuestion().Text)
}

func TestProgressTracksIndex(t *testing.T) {
	m := quiz.New(fiveQuestions())
	m.Start()
	assert.Equal(t, 0.0, m.Progress().Fraction())

	for k := 1; k <= 5; k++ {
		m.RecordAnswer(0)
		m.Advance()
		p := m.Progress()
		assert.Equal(t, k, p.Index)
		assert.Equal(t, 5, p.Total)
		assert.InDelta(t, float64(k)/5, p.Fraction(), 1e-9)
	}
	assert.InDelta(t, 100.0, m.Progress().Percent(), 1e-9)
}

func TestRestartMatchesFreshStart(t *testing.T) {
	m := quiz.New(fiveQuestions())
	m.Start()
	m.RecordAnswer(2)
	m.Advance()
	m.RecordAnswer(1)

	m.Restart()
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 0, m.Score())
	assert.False(t, m.Locked())
	assert.Equal(t, quiz.PhaseAwaiting, m.Phase())

	for i := 0; i < 5; i++ {
		m.Advance()
	}
	m.Restart()
	assert.Equal(t, quiz.PhaseAwaiting, m.Phase())
	assert.Equal(t, 0, m.Score())
}

func TestInvariantViolationsPanic(t *testing.T) {
	assert.Panics(t, func() { quiz.New(nil) })
	assert.Panics(t, func() {
		quiz.New([]domain.Question{{Text: "two right", Answers: []domain.Answer{{Text: "a", Correct: true}, {Text: "b", Correct: true}}}})
	})
	assert.Panics(t, func() {
		quiz.New([]domain.Question{{Text: "none right", Answers: []domain.Answer{{Text: "a"}}}})
	})

	m := quiz.New(fiveQuestions())
	assert.Panics(t, func() { m.RecordAnswer(0) }, "idle")
	assert.Panics(t, func() { m.CurrentQuestion() }, "idle")

	m.Start()
	assert.Panics(t, func() { m.RecordAnswer(4) })
	assert.Panics(t, func() { m.RecordAnswer(-1) })

	for i := 0; i < 5; i++ {
		m.Advance()
	}
	assert.Panics(t, func() { m.RecordAnswer(0) }, "finished")
	assert.Panics(t, func() { m.CurrentQuestion() }, "finished")
}

func TestSummaryTiers(t *testing.T) {
	cases := []struct {
		score, total int
		tier         domain.Tier
	}{
		{5, 5, domain.TierPerfect},
		{4, 5, domain.TierGreat},
		{3, 5, domain.TierGood},
		{2, 5, domain.TierNotBad},
		{1, 5, domain.TierKeepStudying},
		{0, 5, domain.TierKeepStudying},
		{9, 10, domain.TierGreat},
		{59, 100, domain.TierNotBad},
		{2, 3, domain.TierGood},
	}
	for _, tc := range cases {
		summary := quiz.Summarize(tc.score, tc.total)
		assert.Equal(t, tc.tier, summary.Tier, "%d/%d", tc.score, tc.total)
		assert.Equal(t, tc.score, summary.Score)
		assert.Equal(t, tc.total, summary.Total)
	}
	assert.Equal(t, "Great job! You know your stuff!", quiz.Summarize(4, 5).Message)
	assert.Equal(t, 80, quiz.Summarize(4, 5).Percent)
}

func TestScoreEqualsCorrectSelections(t *testing.T) {
	questions := fiveQuestions()
	picks := []int{2, 0, 2, 3, 2}
	m := quiz.New(questions)
	m.Start()

	want := 0
	for i, pick := range picks {
		if questions[i].Answers[pick].Correct {
			want++
		}
		m.RecordAnswer(pick)
		m.RecordAnswer(questions[i].CorrectIndex())
		m.Advance()
	}
	summary := m.FinalSummary()
	assert.Equal(t, want, summary.Score)
	assert.Equal(t, 3, summary.Score)
	assert.LessOrEqual(t, summary.Score, summary.Total)
	assert.Equal(t, domain.TierGood, summary.Tier)
}

// fiveQuestions returns Q1..Q5, each with the correct answer at index 2.
func fiveQuestions() []domain.Question {
	questions := make([]domain.Question, 5)
	for i := range questions {
		questions[i] = domain.Question{
			Text: "Q" + string(rune('1'+i)),
			Answers: []domain.Answer{
				{Text: "a"},
				{Text: "b"},
				{Text: "c", Correct: true},
				{Text: "d"},
			},
		}
	}
	return questions
}
