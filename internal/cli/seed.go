package cli

import (
	"context"
	"fmt"
	"log"

	"quiz-screen/internal/config"
	"quiz-screen/internal/domain"
	"quiz-screen/internal/infra/file"
	pgloader "quiz-screen/internal/infra/postgres"

	"github.com/spf13/cobra"
)

// NewSeedCmd copies question banks into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	var bankDir string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store the built-in quiz and every bank in --bank-dir in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, bankDir)
		},
	}
	cmd.Flags().StringVar(&bankDir, "bank-dir", "", "directory of question banks (default from config)")
	return cmd
}

func runSeed(ctx context.Context, configPath, bankDir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if bankDir != "" {
		cfg.Quiz.BankDir = bankDir
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	quizzes, err := collectBanks(ctx, cfg.Quiz.BankDir)
	if err != nil {
		return err
	}
	store := pgloader.NewQuizLoader(b.pool)
	for _, q := range quizzes {
		if err := store.SaveQuiz(ctx, q); err != nil {
			return err
		}
		log.Printf("seed: stored quiz %s (%d questions)", q.ID, len(q.Questions))
	}
	return nil
}

// collectBanks returns the built-in quiz followed by every bank in dir.
func collectBanks(ctx context.Context, dir string) ([]domain.Quiz, error) {
	quizzes := []domain.Quiz{sampleQuizzes()[sampleQuizID]}
	if dir == "" {
		return quizzes, nil
	}
	loader := file.NewQuizLoader(dir)
	ids, err := loader.ListQuizzes()
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	for _, id := range ids {
		q, err := loader.LoadQuiz(ctx, id)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}
