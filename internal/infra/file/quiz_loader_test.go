package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"quiz-screen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlBank = `title: Space
questions:
  - question: Which planet is known as the Red Planet?
    answers:
      - text: Venus
        correct: false
      - text: Mars
        correct: true
`

const jsonBank = `[
  {"question": "What is the chemical symbol for gold?", "answers": [
    {"text": "Ag", "correct": false},
    {"text": "Au", "correct": true}
  ]}
]`

func TestLoadYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "space.yaml"), []byte(yamlBank), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chemistry.json"), []byte(jsonBank), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644))

	loader := NewQuizLoader(dir)

	space, err := loader.LoadQuiz(context.Background(), "space")
	require.NoError(t, err)
	assert.Equal(t, "space", space.ID)
	assert.Equal(t, "Space", space.Title)
	require.Len(t, space.Questions, 1)
	assert.Equal(t, 1, space.Questions[0].CorrectIndex())

	chem, err := loader.LoadQuiz(context.Background(), "chemistry")
	require.NoError(t, err)
	require.Len(t, chem.Questions, 1)
	assert.Equal(t, "Au", chem.Questions[0].Answers[1].Text)
	assert.NoError(t, chem.Validate())

	ids, err := loader.ListQuizzes()
	require.NoError(t, err)
	assert.Equal(t, []string{"chemistry", "space"}, ids)
}

func TestLoadMissingOrEscapingID(t *testing.T) {
	loader := NewQuizLoader(t.TempDir())
	for _, id := range []string{"missing", "../etc/passwd", ""} {
		_, err := loader.LoadQuiz(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrQuizNotFound, id)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Decode("bad", []byte("questions: [unterminated"))
	assert.Error(t, err)
}
