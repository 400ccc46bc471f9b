package quiz

import "quiz-screen/internal/domain"

type tierBound struct {
	minPercent int
	tier       domain.Tier
	message    string
}

// Checked top-down; bounds are inclusive.
var tiers = []tierBound{
	{100, domain.TierPerfect, "Perfect! You're a genius!"},
	{80, domain.TierGreat, "Great job! You know your stuff!"},
	{60, domain.TierGood, "Good effort! Keep learning!"},
	{40, domain.TierNotBad, "Not bad! Try again to improve!"},
}

var keepStudying = tierBound{0, domain.TierKeepStudying, "Keep studying! You'll get better!"}

// Summarize picks the tier for score out of total.
func Summarize(score, total int) domain.Summary {
	selected := keepStudying
	if total > 0 {
		for _, t := range tiers {
			// score/total*100 >= bound, kept in integers so 4/5 is exactly 80.
			if score*100 >= t.minPercent*total {
				selected = t
				break
			}
		}
	}
	percent := 0
	if total > 0 {
		percent = score * 100 / total
	}
	return domain.Summary{
		Score:   score,
		Total:   total,
		Percent: percent,
		Tier:    selected.tier,
		Message: selected.message,
	}
}
