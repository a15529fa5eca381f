package ats

import (
	"math"
	"strings"
)

// Report is the heuristic ATS compatibility score for one rendered CV against
// one job description. It is recomputed on demand and carries no identity.
type Report struct {
	OverallScore    int              `json:"overallScore"`
	KeywordMatch    int              `json:"keywordMatch"`
	Formatting      int              `json:"formatting"`
	Readability     int              `json:"readability"`
	MissingKeywords []MissingKeyword `json:"missingKeywords"`
	Notes           []string         `json:"notes"`
}

// MissingKeyword is a job-description token absent from the rendered CV.
type MissingKeyword struct {
	Keyword string `json:"keyword"`
	Impact  string `json:"impact"`
}

// ImpactMedium is the only impact tier produced today; finer grading is a
// possible follow-up once real ATS feedback data exists.
const ImpactMedium = "MEDIUM"

const heuristicNote = "This is a simple heuristic ATS score for MVP."

// Scoring weights and the table penalty are fixed constants of the design.
const (
	weightKeyword     = 0.5
	weightFormatting  = 0.3
	weightReadability = 0.2
	tablePenalty      = 20
)

// Score computes the four-factor report for a rendered HTML document and a
// free-text job description. It never fails; an empty job description yields
// a perfect keyword score since there is nothing to match against.
func Score(renderedHTML, jobDescription string) Report {
	plain := Normalize(renderedHTML)

	jdTokens := dedupe(Tokenize(Normalize(jobDescription)))

	present := 0
	missing := make([]MissingKeyword, 0)
	for _, token := range jdTokens {
		if strings.Contains(plain, token) {
			present++
		} else {
			missing = append(missing, MissingKeyword{Keyword: token, Impact: ImpactMedium})
		}
	}

	keywordMatch := 100
	if len(jdTokens) > 0 {
		keywordMatch = int(math.Round(100.0 * float64(present) / float64(len(jdTokens))))
	}

	// Formatting penalty is a raw substring check on the markup, not a
	// structural analysis. The trigger string must not change: stored
	// reports would shift under the same inputs.
	formatting := 100
	if strings.Contains(strings.ToLower(renderedHTML), "<table") {
		formatting -= tablePenalty
	}

	readability := readabilityScore(plain)

	overall := int(math.Round(
		weightKeyword*float64(keywordMatch) +
			weightFormatting*float64(formatting) +
			weightReadability*float64(readability)))

	return Report{
		OverallScore:    overall,
		KeywordMatch:    keywordMatch,
		Formatting:      formatting,
		Readability:     readability,
		MissingKeywords: missing,
		Notes:           []string{heuristicNote},
	}
}

// readabilityScore maps average sentence length onto fixed bands. The
// breakpoints are piecewise-constant on purpose; no smoothing.
func readabilityScore(plain string) int {
	segments := strings.FieldsFunc(plain, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	total := 0
	count := 0
	for _, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" {
			continue
		}
		total += len(trimmed)
		count++
	}
	if count == 0 {
		return 100
	}

	avg := float64(total) / float64(count)
	switch {
	case avg > 200:
		return 60
	case avg > 120:
		return 75
	case avg > 80:
		return 85
	default:
		return 100
	}
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
