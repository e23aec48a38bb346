package assessment

import "math"

type Grade struct {
	CorrectCount   int
	TotalQuestions int
	Breakdown      []BreakdownEntry
}

// GradeAnswers walks the definition's questions in order and checks each against
// the first answer carrying the same question id. Answers for unknown
// questions are ignored.
func GradeAnswers(def Definition, answers []Answer) Grade {
	g := Grade{
		TotalQuestions: len(def.Questions),
		Breakdown:      make([]BreakdownEntry, 0, len(def.Questions)),
	}

	for _, q := range def.Questions {
		selected := firstAnswer(answers, q.ID)
		correct := selected != nil && *selected == q.CorrectOptionIndex
		if correct {
			g.CorrectCount++
		}
		g.Breakdown = append(g.Breakdown, BreakdownEntry{
			QuestionID:         q.ID,
			SelectedIndex:      selected,
			Correct:            correct,
			CorrectOptionIndex: q.CorrectOptionIndex,
		})
	}

	return g
}

func firstAnswer(answers []Answer, questionID string) *int {
	for _, a := range answers {
		if a.QuestionID != questionID {
			continue
		}
		if a.SelectedIndex == nil {
			return nil
		}
		v := *a.SelectedIndex
		return &v
	}
	return nil
}

// Percent is round(100 * correct / total), half rounded up. An empty
// assessment scores 0.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(correct*100)/float64(total) + 0.5))
}
