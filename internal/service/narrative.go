package service

import (
	"fmt"
	"regexp"
	"strings"
	"wallcheck/internal/model"
	"wallcheck/internal/scoring"
)

var (
	firstHeading      = regexp.MustCompile(`(?m)^#+\s`)
	trailingCodeFence = regexp.MustCompile("```\\s*$")
)

// CleanResponse drops any preamble before the first markdown heading and a
// dangling closing code fence, then trims whitespace
func CleanResponse(text string) string {
	if text == "" {
		return ""
	}

	cleaned := text
	if loc := firstHeading.FindStringIndex(cleaned); loc != nil {
		cleaned = cleaned[loc[0]:]
	}
	cleaned = trailingCodeFence.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// FallbackNarrative is shown when the analysis could not be fetched. It depends
// on the scores only.
func FallbackNarrative(scheme *scoring.Scheme, scores model.ScoreSet) string {
	var sb strings.Builder
	sb.WriteString("[Diagnostic summary]\n")
	sb.WriteString("Scores per axis:\n")
	for _, axis := range scheme.Axes() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", scheme.Label(axis), model.FormatScore(scores.Get(axis))))
	}
	sb.WriteString("\nAI analysis is temporarily unavailable. Please try again later.")
	return sb.String()
}

// MockNarrative is the canned report returned in mock mode
func MockNarrative(scheme *scoring.Scheme, bottleneck model.Axis, lowestQuestions string) string {
	if bottleneck == model.NoBottleneck {
		return fmt.Sprintf(`# Diagnostic report

---

## Biggest bottleneck
### **[%s]**
> Congratulations. You have cleared every wall and are ready to work closely with AI.

---

## Advice
Every axis is at the top of the scale. Turn your own experience into shared know-how and lead the redesign around you.`,
			scheme.Label(model.NoBottleneck))
	}

	var issues []string
	for _, q := range strings.Split(lowestQuestions, ",") {
		if q = strings.TrimSpace(q); q != "" {
			issues = append(issues, fmt.Sprintf("* **Issue:** %s scored low and is holding you back.", q))
		}
	}

	label := scheme.Label(bottleneck)
	return fmt.Sprintf(`# Diagnostic report

---

## Biggest bottleneck
### **[%s]**
> This is the main wall keeping your organization from working alongside AI.

---

## Current redesign level
| Estimated level | Target |
| :--- | :--- |
| **Level 2 (partial automation)** | **Level 3 (end-to-end redesign)** |

### Issues to solve
%s

---

## Roadmap

### Step 1: short term
* Run targeted fixes for the low-scoring questions

### Step 2: mid to long term
* Build a learning process across the whole organization

---

## Advice
The **%s** is also where you have the most room to grow.`,
		label, strings.Join(issues, "\n"), label)
}
