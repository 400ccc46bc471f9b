package cli

import (
	"context"
	"errors"
	"log"
	"time"

	"quiz-screen/internal/app"
	"quiz-screen/internal/config"
	"quiz-screen/internal/domain"
	"quiz-screen/internal/infra/file"
	"quiz-screen/internal/infra/memory"
	pgloader "quiz-screen/internal/infra/postgres"
	infraredis "quiz-screen/internal/infra/redis"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
)

// loaderChain asks each loader in turn, moving on only when a quiz is not found.
type loaderChain []memory.QuizLoader

func (c loaderChain) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	for _, loader := range c {
		q, err := loader.LoadQuiz(ctx, quizID)
		if errors.Is(err, domain.ErrQuizNotFound) {
			continue
		}
		return q, err
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

// backends holds the optional external clients a command opened.
type backends struct {
	pool  *pgxpool.Pool
	redis *redis.Client
}

func openBackends(ctx context.Context, cfg config.Config) (*backends, error) {
	b := &backends{}
	if cfg.Redis.Addr != "" {
		b.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.pool = pool
	}
	return b, nil
}

func (b *backends) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
	if b.redis != nil {
		_ = b.redis.Close()
	}
}

// quizRepository layers Postgres, the bank directory and the built-in
// sample, then puts the configured cache in front.
func (b *backends) quizRepository(cfg config.Config) app.QuizRepository {
	var chain loaderChain
	if b.pool != nil {
		chain = append(chain, pgloader.NewQuizLoader(b.pool))
	}
	if cfg.Quiz.BankDir != "" {
		chain = append(chain, file.NewQuizLoader(cfg.Quiz.BankDir))
	}
	chain = append(chain, memory.NewStaticQuizLoader(sampleQuizzes()))

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	if b.redis != nil {
		return infraredis.NewQuizRepository(b.redis, chain, quizTTL)
	}
	return memory.NewQuizRepository(chain, quizTTL)
}

func (b *backends) sessionStore(cfg config.Config) app.SessionRepository {
	if b.redis != nil {
		return infraredis.NewSessionStore(b.redis, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute))
	}
	return memory.NewSessionStore()
}

func (b *backends) quizService(cfg config.Config, delayOverride time.Duration) *app.QuizService {
	delay := config.TTLDuration(cfg.Quiz.AdvanceDelay, app.DefaultAdvanceDelay)
	if delayOverride > 0 {
		delay = delayOverride
	}
	log.Printf("quiz service: advance delay %s", delay)
	return app.NewQuizService(b.sessionStore(cfg), b.quizRepository(cfg), app.WithAdvanceDelay(delay))
}

func defaultQuizID(cfg config.Config) string {
	if cfg.Quiz.DefaultID != "" {
		return cfg.Quiz.DefaultID
	}
	return sampleQuizID
}
