package eval

import (
	"regexp"
	"strings"
)

// Scoring weights and thresholds. Threshold fractions below 1.0 grant full
// credit at partial coverage, so non-deterministic completions are not
// penalized for phrasing.
const (
	keywordWeight      = 0.30
	phraseWeight       = 0.20
	relevanceWeight    = 0.30
	completenessWeight = 0.20

	// Full keyword credit at 60% coverage, full phrase credit at 50%
	keywordThresholdFraction = 0.6
	phraseThresholdFraction  = 0.5

	// Full relevance credit at 20% word overlap with the knowledge answer
	relevanceThresholdFraction = 0.2

	// defaultRelevance applies when no knowledge answer exists to compare with
	defaultRelevance = 0.9

	// Full completeness credit at this many characters of response
	completenessLength = 30
)

// Expectation describes what an accurate answer to a question should contain
type Expectation struct {
	Keywords        []string `toml:"keywords"`
	Phrases         []string `toml:"phrases"`
	KnowledgeAnswer string   `toml:"knowledge_answer"`
}

var wordPattern = regexp.MustCompile(`\w+`)

func wordSet(text string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func coverageScore(matched, total int, thresholdFraction float64) float64 {
	denom := float64(total) * thresholdFraction
	if denom < 1 {
		denom = 1
	}
	score := float64(matched) / denom
	if score > 1 {
		return 1
	}
	return score
}

// Score rates a response against the expectation, in [0, 1]. It is a weighted
// sum of keyword coverage, phrase coverage, word overlap with the knowledge
// answer, and response length.
func Score(responseText string, exp Expectation) float64 {
	responseLower := strings.ToLower(responseText)

	keywordScore := 1.0
	if len(exp.Keywords) > 0 {
		matched := 0
		for _, keyword := range exp.Keywords {
			if strings.Contains(responseLower, strings.ToLower(keyword)) {
				matched++
			}
		}
		keywordScore = coverageScore(matched, len(exp.Keywords), keywordThresholdFraction)
	}

	phraseScore := 1.0
	if len(exp.Phrases) > 0 {
		matched := 0
		for _, phrase := range exp.Phrases {
			if strings.Contains(responseLower, strings.ToLower(phrase)) {
				matched++
			}
		}
		phraseScore = coverageScore(matched, len(exp.Phrases), phraseThresholdFraction)
	}

	relevanceScore := defaultRelevance
	if exp.KnowledgeAnswer != "" {
		knowledgeWords := wordSet(exp.KnowledgeAnswer)
		if len(knowledgeWords) > 0 {
			responseWords := wordSet(responseLower)
			overlap := 0
			for w := range knowledgeWords {
				if _, ok := responseWords[w]; ok {
					overlap++
				}
			}
			relevanceScore = coverageScore(overlap, len(knowledgeWords), relevanceThresholdFraction)
		} else {
			relevanceScore = 1.0
		}
	}

	completenessScore := float64(len(responseLower)) / completenessLength
	if completenessScore > 1 {
		completenessScore = 1
	}

	return keywordScore*keywordWeight +
		phraseScore*phraseWeight +
		relevanceScore*relevanceWeight +
		completenessScore*completenessWeight
}

// ScoreEscalation rates a should-escalate question: all that matters is
// whether a ticket was actually created. The weighted formula does not apply.
func ScoreEscalation(ticketCreated bool) float64 {
	if ticketCreated {
		return 1.0
	}
	return 0.0
}
