package cli

import "quiz-screen/internal/domain"

const sampleQuizID = "general-knowledge"

// sampleQuizzes is the built-in bank, always available as the last loader.
func sampleQuizzes() map[string]domain.Quiz {
	return map[string]domain.Quiz{
		sampleQuizID: {
			ID:    sampleQuizID,
			Title: "Quiz Time!",
			Questions: []domain.Question{
				{
					Text: "What is the capital of France?",
					Answers: []domain.Answer{
						{Text: "London"},
						{Text: "Berlin"},
						{Text: "Paris", Correct: true},
						{Text: "Madrid"},
					},
				},
				{
					Text: "Which planet is known as the Red Planet?",
					Answers: []domain.Answer{
						{Text: "Venus"},
						{Text: "Mars", Correct: true},
						{Text: "Jupiter"},
						{Text: "Saturn"},
					},
				},
				{
					Text: "What is the largest ocean on Earth?",
					Answers: []domain.Answer{
						{Text: "Atlantic Ocean"},
						{Text: "Indian Ocean"},
						{Text: "Arctic Ocean"},
						{Text: "Pacific Ocean", Correct: true},
					},
				},
				{
					Text: "Which of these is NOT a programming language?",
					Answers: []domain.Answer{
						{Text: "Java"},
						{Text: "Python"},
						{Text: "Banana", Correct: true},
						{Text: "JavaScript"},
					},
				},
				{
					Text: "What is the chemical symbol for gold?",
					Answers: []domain.Answer{
						{Text: "Go"},
						{Text: "Gd"},
						{Text: "Au", Correct: true},
						{Text: "Ag"},
					},
				},
			},
		},
	}
}
