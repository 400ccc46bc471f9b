package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quiz-screen/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuizLoader loads question banks stored as JSONB documents.
type QuizLoader struct {
	pool *pgxpool.Pool
}

func NewQuizLoader(pool *pgxpool.Pool) *QuizLoader {
	return &QuizLoader{pool: pool}
}

func (l *QuizLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM quizzes WHERE id=$1`, quizID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: %w", err)
	}
	return decodeQuiz(quizID, raw)
}

// SaveQuiz upserts a validated bank.
func (l *QuizLoader) SaveQuiz(ctx context.Context, q domain.Quiz) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("save quiz %s: %w", q.ID, err)
	}
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal quiz: %w", err)
	}
	_, err = l.pool.Exec(ctx,
		`INSERT INTO quizzes (id, data) VALUES ($1, $2::jsonb)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		q.ID, string(data))
	if err != nil {
		return fmt.Errorf("save quiz %s: %w", q.ID, err)
	}
	return nil
}

func decodeQuiz(quizID string, raw []byte) (domain.Quiz, error) {
	var q domain.Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal quiz: %w", err)
	}
	if q.ID == "" {
		q.ID = quizID
	}
	return q, nil
}
