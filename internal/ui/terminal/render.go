package terminal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quiz-screen/internal/domain"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("203")
	colorCursor  = lipgloss.Color("212")
)

func renderStart(screen domain.Screen, noColor bool) string {
	title := screen.Title
	if title == "" {
		title = "Quiz Time!"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		stylizeBold(title, noColor, colorTitle),
		"Test your knowledge with "+strconv.Itoa(screen.Total)+" questions.",
	)
}

func renderHeader(screen domain.Screen, noColor bool) string {
	line := "Question " + strconv.Itoa(screen.Number) + " of " + strconv.Itoa(screen.Total) +
		" | Score: " + strconv.Itoa(screen.Score)
	return stylize(line, noColor, colorMuted)
}

func renderQuestion(screen domain.Screen, cursor int, noColor bool) string {
	lines := []string{stylizeBold(screen.Question, noColor, lipgloss.Color("255")), ""}
	for i, text := range screen.Answers {
		lines = append(lines, renderAnswer(i, text, screen.Feedback, i == cursor, noColor))
	}
	return strings.Join(lines, "\n")
}

// renderAnswer derives the answer's look from the feedback facts: the
// correct answer is always highlighted once answered, the picked one only
// when it was wrong.
func renderAnswer(index int, text string, feedback *domain.Feedback, selected bool, noColor bool) string {
	label := strconv.Itoa(index+1) + ". " + text
	if feedback == nil || index >= len(feedback.Answers) {
		if selected {
			return stylize("> "+label, noColor, colorCursor)
		}
		return "  " + label
	}
	fact := feedback.Answers[index]
	switch {
	case fact.Correct:
		return stylize("✓ "+label, noColor, colorCorrect)
	case fact.Selected:
		return stylize("✗ "+label, noColor, colorWrong)
	default:
		return stylize("  "+label, noColor, colorMuted)
	}
}

func renderResults(screen domain.Screen, noColor bool) string {
	summary := screen.Summary
	if summary == nil {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		stylizeBold("Quiz Results", noColor, colorTitle),
		"You scored "+strconv.Itoa(summary.Score)+" out of "+strconv.Itoa(summary.Total),
		stylize(summary.Message, noColor, tierColor(summary.Tier)),
	)
}

func renderHelp(kind domain.ScreenKind, keys keyMap, noColor bool) string {
	var bindings []string
	switch kind {
	case domain.ScreenStart:
		bindings = append(bindings, helpText(keys.Start.Help().Key, keys.Start.Help().Desc))
	case domain.ScreenQuestion:
		bindings = append(bindings,
			helpText(keys.Up.Help().Key, keys.Up.Help().Desc),
			helpText(keys.Down.Help().Key, keys.Down.Help().Desc),
			helpText("1-9/"+keys.Select.Help().Key, keys.Select.Help().Desc),
		)
	case domain.ScreenResults:
		bindings = append(bindings, helpText(keys.Restart.Help().Key, keys.Restart.Help().Desc))
	}
	bindings = append(bindings, helpText(keys.Quit.Help().Key, keys.Quit.Help().Desc))
	return stylize(strings.Join(bindings, " • "), noColor, lipgloss.Color("240"))
}

func helpText(keyName, desc string) string {
	return keyName + " " + desc
}

func tierColor(tier domain.Tier) lipgloss.Color {
	switch tier {
	case domain.TierPerfect, domain.TierGreat:
		return colorCorrect
	case domain.TierGood, domain.TierNotBad:
		return lipgloss.Color("214")
	default:
		return colorWrong
	}
}

// stylize applies foreground color unless color is disabled.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
