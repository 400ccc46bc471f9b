// Package file loads question banks authored as YAML or JSON files, one bank
// per file, named after the quiz ID.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quiz-screen/internal/domain"

	"gopkg.in/yaml.v3"
)

var extensions = []string{".yaml", ".yml", ".json"}

// QuizLoader reads <dir>/<quizID>.{yaml,yml,json}.
type QuizLoader struct {
	dir string
}

func NewQuizLoader(dir string) *QuizLoader {
	return &QuizLoader{dir: dir}
}

func (l *QuizLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	if quizID == "" || strings.ContainsAny(quizID, `/\`) || quizID != filepath.Base(quizID) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	for _, ext := range extensions {
		path := filepath.Join(l.dir, quizID+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return domain.Quiz{}, fmt.Errorf("read quiz %s: %w", quizID, err)
		}
		return Decode(quizID, data)
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

// ListQuizzes returns the quiz IDs found in the directory, sorted.
func (l *QuizLoader) ListQuizzes() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isBankExt(ext) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ext)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Decode parses a bank document. JSON input is accepted as YAML. A bare list
// of questions is accepted as well as the {id, title, questions} form.
func Decode(quizID string, data []byte) (domain.Quiz, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return domain.Quiz{}, fmt.Errorf("decode quiz %s: %w", quizID, err)
	}

	var q domain.Quiz
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		if err := node.Decode(&q.Questions); err != nil {
			return domain.Quiz{}, fmt.Errorf("decode quiz %s: %w", quizID, err)
		}
	} else if err := node.Decode(&q); err != nil {
		return domain.Quiz{}, fmt.Errorf("decode quiz %s: %w", quizID, err)
	}
	if q.ID == "" {
		q.ID = quizID
	}
	return q, nil
}

func isBankExt(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}
