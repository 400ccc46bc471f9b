package domain

// ScreenKind names which of the quiz screens a view should show.
type ScreenKind string

const (
	ScreenStart    ScreenKind = "start"
	ScreenQuestion ScreenKind = "question"
	ScreenAnswered ScreenKind = "answered"
	ScreenResults  ScreenKind = "results"
)

// AnswerFeedback tells a view, per answer, whether it is the correct one and
// whether the user picked it. Styling is left to the view.
type AnswerFeedback struct {
	Correct  bool `json:"correct"`
	Selected bool `json:"selected"`
}

// Feedback is the outcome of recording one answer.
type Feedback struct {
	QuestionIndex int              `json:"questionIndex"`
	Selected      int              `json:"selected"`
	Correct       bool             `json:"correct"`
	Answers       []AnswerFeedback `json:"answers"`
}

// Tier is the qualitative band of a final score.
type Tier string

const (
	TierPerfect      Tier = "perfect"
	TierGreat        Tier = "great"
	TierGood         Tier = "good"
	TierNotBad       Tier = "not bad"
	TierKeepStudying Tier = "keep studying"
)

// Summary is the results-screen content.
type Summary struct {
	Score   int    `json:"score"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
	Tier    Tier   `json:"tier"`
	Message string `json:"message"`
}

// Screen is a snapshot of everything a view needs to render the session.
type Screen struct {
	SessionID string     `json:"sessionId"`
	QuizID    string     `json:"quizId"`
	Title     string     `json:"title,omitempty"`
	Kind      ScreenKind `json:"kind"`
	// Number is the 1-based question number; zero on start and results screens.
	Number   int       `json:"number,omitempty"`
	Total    int       `json:"total"`
	Question string    `json:"question,omitempty"`
	Answers  []string  `json:"answers,omitempty"`
	Feedback *Feedback `json:"feedback,omitempty"`
	Score    int       `json:"score"`
	Progress float64   `json:"progress"`
	Summary  *Summary  `json:"summary,omitempty"`
}
