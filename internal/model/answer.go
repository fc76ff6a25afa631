package model

// Axis identifies one of the four readiness walls, or the NoBottleneck sentinel.
type Axis string

const (
	AxisHumanInternal       Axis = "human_internal"       // Self: resistance, ownership
	AxisResourceInternal    Axis = "resource_internal"    // Resources: time, budget, skills
	AxisHumanExternal       Axis = "human_external"       // Others: stakeholders, customers
	AxisEnvironmentExternal Axis = "environment_external" // Environment: rules, culture, market

	// NoBottleneck is returned when every axis is at the top of the scale
	NoBottleneck Axis = "none"
)

// AnswerSet maps a question id ("Q1".."Q20") to a 1-6 agreement value.
// A missing entry counts as the lowest value.
type AnswerSet map[string]int

// ScoreSet holds the per-axis averages, rounded to 2 decimals
type ScoreSet struct {
	HumanInternal       float64 `json:"human_internal"`
	ResourceInternal    float64 `json:"resource_internal"`
	HumanExternal       float64 `json:"human_external"`
	EnvironmentExternal float64 `json:"environment_external"`
}

// Get returns the score for an axis. Unknown axes read as 0.
func (s ScoreSet) Get(axis Axis) float64 {
	switch axis {
	case AxisHumanInternal:
		return s.HumanInternal
	case AxisResourceInternal:
		return s.ResourceInternal
	case AxisHumanExternal:
		return s.HumanExternal
	case AxisEnvironmentExternal:
		return s.EnvironmentExternal
	}
	return 0
}

// Set assigns the score for an axis; unknown axes are ignored
func (s *ScoreSet) Set(axis Axis, value float64) {
	switch axis {
	case AxisHumanInternal:
		s.HumanInternal = value
	case AxisResourceInternal:
		s.ResourceInternal = value
	case AxisHumanExternal:
		s.HumanExternal = value
	case AxisEnvironmentExternal:
		s.EnvironmentExternal = value
	}
}

// ChartPoint is one spoke of the radar chart
type ChartPoint struct {
	Axis  Axis    `json:"axis"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartProjection is the chart-ready view of a ScoreSet
type ChartProjection struct {
	Points []ChartPoint `json:"points"`
	Min    float64      `json:"min"` // Domain floor, 0 for visual symmetry
	Max    float64      `json:"max"`
}

// Labels returns the spoke labels in order
func (c ChartProjection) Labels() []string {
	labels := make([]string, len(c.Points))
	for i, p := range c.Points {
		labels[i] = p.Label
	}
	return labels
}

// Diagnosis bundles everything derived from one AnswerSet
type Diagnosis struct {
	Scores          ScoreSet         `json:"scores"`
	BottleneckAxis  Axis             `json:"bottleneckAxis"`
	BottleneckLabel string           `json:"bottleneckLabel"`
	Chart           ChartProjection  `json:"chart"`
	LowestQuestions string           `json:"lowestQuestions"` // e.g. "Q2(1.0), Q10(2.0), Q11(3.0), Q17(1.0)"
	StdDev          map[Axis]float64 `json:"stdDev"`
}
