package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"wallcheck/internal/model"
)

// ComputeScores averages each axis over its questions, rounded to 2 decimals
func (s *Scheme) ComputeScores(answers model.AnswerSet) model.ScoreSet {
	var scores model.ScoreSet
	for _, g := range s.groups {
		sum := 0
		for _, q := range g.Questions {
			sum += s.value(answers, q)
		}
		scores.Set(g.Axis, round2(float64(sum)/float64(len(g.Questions))))
	}
	return scores
}

// ClassifyBottleneck returns the lowest axis, or NoBottleneck when every axis
// is at the top of the scale. Ties go to the first axis in priority order.
func (s *Scheme) ClassifyBottleneck(scores model.ScoreSet) model.Axis {
	minScore := math.Inf(1)
	for _, axis := range s.Axes() {
		if v := scores.Get(axis); v < minScore {
			minScore = v
		}
	}

	if minScore >= float64(s.scaleMax) {
		return model.NoBottleneck
	}

	for _, axis := range s.priority {
		if scores.Get(axis) == minScore {
			return axis
		}
	}
	return s.priority[len(s.priority)-1]
}

// ChartProjection lays the scores out as radar spokes in axis order
func (s *Scheme) ChartProjection(scores model.ScoreSet) model.ChartProjection {
	points := make([]model.ChartPoint, 0, len(s.groups))
	for _, g := range s.groups {
		points = append(points, model.ChartPoint{
			Axis:  g.Axis,
			Label: g.Label,
			Value: scores.Get(g.Axis),
		})
	}
	return model.ChartProjection{
		Points: points,
		Min:    s.chartFloor,
		Max:    float64(s.scaleMax),
	}
}

// DigestLowestQuestions picks the weakest question of every axis and formats
// them as "Q2(1.0), Q10(2.0), ...". Ties keep the first question listed.
func (s *Scheme) DigestLowestQuestions(answers model.AnswerSet) string {
	type questionScore struct {
		id    string
		score int
	}

	parts := make([]string, 0, len(s.groups))
	for _, g := range s.groups {
		scored := make([]questionScore, len(g.Questions))
		for i, q := range g.Questions {
			scored[i] = questionScore{id: q, score: s.value(answers, q)}
		}
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score < scored[j].score
		})
		lowest := scored[0]
		parts = append(parts, fmt.Sprintf("%s(%.1f)", lowest.id, float64(lowest.score)))
	}
	return strings.Join(parts, ", ")
}

// StandardDeviationByAxis returns the population standard deviation of the raw
// answers of every axis
func (s *Scheme) StandardDeviationByAxis(answers model.AnswerSet) map[model.Axis]float64 {
	out := make(map[model.Axis]float64, len(s.groups))
	for _, g := range s.groups {
		n := float64(len(g.Questions))
		sum := 0.0
		for _, q := range g.Questions {
			sum += float64(s.value(answers, q))
		}
		mean := sum / n

		variance := 0.0
		for _, q := range g.Questions {
			d := float64(s.value(answers, q)) - mean
			variance += d * d
		}
		out[g.Axis] = math.Sqrt(variance / n)
	}
	return out
}

// Diagnose runs every derivation over one AnswerSet
func (s *Scheme) Diagnose(answers model.AnswerSet) *model.Diagnosis {
	scores := s.ComputeScores(answers)
	bottleneck := s.ClassifyBottleneck(scores)
	return &model.Diagnosis{
		Scores:          scores,
		BottleneckAxis:  bottleneck,
		BottleneckLabel: s.Label(bottleneck),
		Chart:           s.ChartProjection(scores),
		LowestQuestions: s.DigestLowestQuestions(answers),
		StdDev:          s.StandardDeviationByAxis(answers),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
