package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"quiz-screen/internal/config"
	"quiz-screen/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type playOptions struct {
	quizID  string
	bankDir string
	delay   time.Duration
	noColor bool
}

// NewPlayCmd runs one quiz in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	opts := playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, opts)
		},
	}
	cmd.Flags().StringVar(&opts.quizID, "quiz", "", "quiz ID to play (default from config, else the built-in quiz)")
	cmd.Flags().StringVar(&opts.bankDir, "bank-dir", "", "directory of <quizID>.yaml|.json question banks")
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "pause after each answer (default from config, else 1s)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colors")
	return cmd
}

func runPlay(ctx context.Context, configPath string, opts playOptions) error {
	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return err
	}
	if opts.bankDir != "" {
		cfg.Quiz.BankDir = opts.bankDir
	}
	quizID := opts.quizID
	if quizID == "" {
		quizID = defaultQuizID(cfg)
	}

	// Log lines would tear the alternate screen.
	log.SetOutput(io.Discard)

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	service := b.quizService(cfg, opts.delay)
	session, err := service.Open(ctx, quizID)
	if err != nil {
		return fmt.Errorf("open quiz %s: %w", quizID, err)
	}
	defer service.Close(context.Background(), session.ID())

	screens, cancel := session.Subscribe()
	defer cancel()
	initial := <-screens

	model := terminal.NewModel(session, screens, initial, terminal.Options{NoColor: opts.noColor})
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
