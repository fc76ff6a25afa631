package scoring

import "wallcheck/internal/model"

// AxisGroup is the fixed set of questions averaged into one axis
type AxisGroup struct {
	Axis      model.Axis
	Label     string
	Questions []string
}

// Scheme is the immutable scoring configuration. Build it once with DefaultScheme
// and pass it to whatever needs to score or label answers.
type Scheme struct {
	groups    []AxisGroup  // declaration order, also chart and digest order
	priority  []model.Axis // bottleneck tie-break, first wins
	noneLabel string

	scaleMin   int
	scaleMax   int
	chartFloor float64 // 0 for visual symmetry; scores never go below scaleMin
}

// DefaultScheme returns the 4x5 grouping used by the questionnaire
func DefaultScheme() *Scheme {
	return &Scheme{
		groups: []AxisGroup{
			{Axis: model.AxisHumanInternal, Label: "Self wall", Questions: []string{"Q1", "Q2", "Q3", "Q4", "Q5"}},
			{Axis: model.AxisResourceInternal, Label: "Resource wall", Questions: []string{"Q6", "Q7", "Q8", "Q9", "Q10"}},
			{Axis: model.AxisHumanExternal, Label: "Others wall", Questions: []string{"Q11", "Q12", "Q13", "Q14", "Q15"}},
			{Axis: model.AxisEnvironmentExternal, Label: "Environment wall", Questions: []string{"Q16", "Q17", "Q18", "Q19", "Q20"}},
		},
		// External causes first so the result does not default to blaming the respondent
		priority: []model.Axis{
			model.AxisEnvironmentExternal,
			model.AxisHumanExternal,
			model.AxisResourceInternal,
			model.AxisHumanInternal,
		},
		noneLabel:  "All walls cleared",
		scaleMin:   1,
		scaleMax:   6,
		chartFloor: 0,
	}
}

// Groups returns a copy of the axis groups in declaration order
func (s *Scheme) Groups() []AxisGroup {
	out := make([]AxisGroup, len(s.groups))
	for i, g := range s.groups {
		g.Questions = append([]string(nil), g.Questions...)
		out[i] = g
	}
	return out
}

// Axes returns the axes in declaration order
func (s *Scheme) Axes() []model.Axis {
	axes := make([]model.Axis, len(s.groups))
	for i, g := range s.groups {
		axes[i] = g.Axis
	}
	return axes
}

// Label returns the display label for an axis, including NoBottleneck
func (s *Scheme) Label(axis model.Axis) string {
	if axis == model.NoBottleneck {
		return s.noneLabel
	}
	for _, g := range s.groups {
		if g.Axis == axis {
			return g.Label
		}
	}
	return string(axis)
}

// Labels returns every label keyed by axis, NoBottleneck included
func (s *Scheme) Labels() map[model.Axis]string {
	labels := make(map[model.Axis]string, len(s.groups)+1)
	for _, g := range s.groups {
		labels[g.Axis] = g.Label
	}
	labels[model.NoBottleneck] = s.noneLabel
	return labels
}

// Scale returns the answer scale bounds
func (s *Scheme) Scale() (lo, hi int) {
	return s.scaleMin, s.scaleMax
}

// AxisOf returns the axis a question belongs to
func (s *Scheme) AxisOf(questionID string) (model.Axis, bool) {
	for _, g := range s.groups {
		for _, q := range g.Questions {
			if q == questionID {
				return g.Axis, true
			}
		}
	}
	return "", false
}

// value reads one answer, substituting the scale minimum for missing or
// below-scale entries and clamping anything above the scale
func (s *Scheme) value(answers model.AnswerSet, questionID string) int {
	v, ok := answers[questionID]
	if !ok || v < s.scaleMin {
		return s.scaleMin
	}
	if v > s.scaleMax {
		return s.scaleMax
	}
	return v
}
