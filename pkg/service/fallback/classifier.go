package fallback

import "strings"

// Classifier decides whether a completion counts as a genuine answer or a
// refusal. Detection is pure lower-cased substring containment against a fixed
// phrase set; no stemming, no fuzziness.
type Classifier struct {
	phrases []string
}

// ClassifierOption is a functional option for Classifier configuration
type ClassifierOption func(*Classifier)

// WithPhrases replaces the default refusal phrase set
func WithPhrases(phrases []string) ClassifierOption {
	return func(c *Classifier) {
		if len(phrases) > 0 {
			c.phrases = phrases
		}
	}
}

// NewClassifier creates a Classifier with the built-in phrase set unless overridden
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		phrases: DefaultRefusalPhrases(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsRefusal reports whether the text contains any refusal phrase
func (c *Classifier) IsRefusal(text string) bool {
	textLower := strings.ToLower(text)
	for _, phrase := range c.phrases {
		if strings.Contains(textLower, phrase) {
			return true
		}
	}
	return false
}
