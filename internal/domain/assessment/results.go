package assessment

const (
	ColorCorrect = "#22c55e"
	ColorWrong   = "#ef4444"
)

type Dataset struct {
	Label           string
	Data            []int
	BackgroundColor []string
}

type Chart struct {
	Labels   []string
	Datasets []Dataset
}

type Results struct {
	CandidateID  string
	AssessmentID string
	Attempts     int
	Latest       *Submission
	Chart        Chart
	PerQuestion  Chart
}

func emptyChart() Chart {
	return Chart{Labels: []string{}, Datasets: []Dataset{}}
}

// Aggregate summarises the latest of the given submissions, which must be in
// append order. Only the latest attempt feeds the charts.
func Aggregate(candidateID, assessmentID string, subs []Submission) Results {
	res := Results{
		CandidateID:  candidateID,
		AssessmentID: assessmentID,
		Attempts:     len(subs),
		Chart:        emptyChart(),
		PerQuestion:  emptyChart(),
	}
	if len(subs) == 0 {
		return res
	}

	latest := subs[len(subs)-1]
	res.Latest = &latest

	wrong := latest.TotalQuestions - latest.CorrectCount
	res.Chart = Chart{
		Labels: []string{"Correct", "Wrong"},
		Datasets: []Dataset{{
			Label:           "Answers",
			Data:            []int{latest.CorrectCount, wrong},
			BackgroundColor: []string{ColorCorrect, ColorWrong},
		}},
	}

	labels := make([]string, 0, len(latest.Breakdown))
	data := make([]int, 0, len(latest.Breakdown))
	colors := make([]string, 0, len(latest.Breakdown))
	for _, b := range latest.Breakdown {
		labels = append(labels, b.QuestionID)
		if b.Correct {
			data = append(data, 1)
			colors = append(colors, ColorCorrect)
		} else {
			data = append(data, 0)
			colors = append(colors, ColorWrong)
		}
	}
	res.PerQuestion = Chart{
		Labels: labels,
		Datasets: []Dataset{{
			Label:           "Correct (1) / Wrong (0)",
			Data:            data,
			BackgroundColor: colors,
		}},
	}

	return res
}
