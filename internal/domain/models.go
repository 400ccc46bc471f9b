package domain

import "fmt"

// Answer is one selectable option of a question.
type Answer struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Question models an MCQ question with exactly one correct answer.
type Question struct {
	Text    string   `json:"question" yaml:"question"`
	Answers []Answer `json:"answers" yaml:"answers"`
}

// CorrectIndex returns the index of the first correct answer, or -1.
func (q Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a.Correct {
			return i
		}
	}
	return -1
}

// Quiz is a named, ordered question bank.
type Quiz struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Validate checks the authored data: at least one question, and every
// question has answers with exactly one marked correct.
func (q Quiz) Validate() error {
	return ValidateQuestions(q.Questions)
}

// ValidateQuestions is Validate for a bare question sequence.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}
	for i, question := range questions {
		if len(question.Answers) == 0 {
			return fmt.Errorf("question %d has no answers: %w", i+1, ErrInvalidQuestion)
		}
		correct := 0
		for _, a := range question.Answers {
			if a.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("question %d has %d correct answers: %w", i+1, correct, ErrInvalidQuestion)
		}
	}
	return nil
}
