package service

import (
	"wallcheck/internal/model"
	"wallcheck/internal/scoring"
)

type catalogEntry struct {
	category     string
	categoryName string
	text         string
}

// builtinQuestions lists the questionnaire in order, five per axis
var builtinQuestions = []catalogEntry{
	// Self
	{"mindset", "Mindset", "I see AI as a partner in my work rather than a threat to it."},
	{"ownership", "Ownership", "I feel it is my job to change how our work gets done, not someone else's."},
	{"curiosity", "Curiosity", "I try new AI tools on my own initiative, even when nobody asks me to."},
	{"letting_go", "Letting go", "I am willing to give up tasks I am good at if AI can do them well enough."},
	{"confidence", "Confidence", "I can explain to others what AI could change in my own workflow."},
	// Resources
	{"time", "Time", "I have protected time to rethink how my work is done."},
	{"budget", "Budget", "We can get budget for AI tools without a long approval process."},
	{"skills", "Skills", "My team has the skills to design and maintain AI-assisted workflows."},
	{"data", "Data", "The data we need for AI is accessible and in usable shape."},
	{"tools", "Tools", "We are allowed to use capable AI tools with our actual work material."},
	// Others
	{"manager", "Manager", "My manager actively supports experiments that change how we work."},
	{"peers", "Peers", "My colleagues are open to changing shared processes."},
	{"stakeholders", "Stakeholders", "Other departments cooperate when a redesign touches their work."},
	{"customers", "Customers", "Our customers would accept deliverables produced with AI assistance."},
	{"champions", "Champions", "There are people around me I can learn AI practices from."},
	// Environment
	{"rules", "Rules", "Our policies make it clear what AI use is allowed."},
	{"culture", "Culture", "Failure in a well-run experiment is not punished here."},
	{"evaluation", "Evaluation", "Time saved through redesign is recognized in how we are evaluated."},
	{"leadership", "Leadership", "Leadership has communicated a clear direction for AI adoption."},
	{"market", "Market", "Our industry is moving fast enough that redesign feels urgent."},
}

// DefaultQuestions builds the built-in catalog, assigning ids and axes from the scheme
func DefaultQuestions(scheme *scoring.Scheme) []*model.Question {
	questions := make([]*model.Question, 0, len(builtinQuestions))
	order := 0
	for _, g := range scheme.Groups() {
		for _, id := range g.Questions {
			if order >= len(builtinQuestions) {
				return questions
			}
			e := builtinQuestions[order]
			order++
			questions = append(questions, &model.Question{
				ID:           id,
				Order:        order,
				Axis:         g.Axis,
				Wall:         g.Label,
				Category:     e.category,
				CategoryName: e.categoryName,
				Text:         e.text,
			})
		}
	}
	return questions
}
