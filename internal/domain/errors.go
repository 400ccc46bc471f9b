package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a quiz session has not been opened or was closed.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrEmptyQuiz indicates a question bank without questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrInvalidQuestion indicates a question without exactly one correct answer.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrAnswerOutOfRange indicates a selected answer index the current question does not have.
	ErrAnswerOutOfRange = errors.New("answer index out of range")
	// ErrQuizNotStarted is returned for answers sent before the quiz was started.
	ErrQuizNotStarted = errors.New("quiz not started")
	// ErrQuizFinished is returned for answers sent after the last question.
	ErrQuizFinished = errors.New("quiz already finished")
)
