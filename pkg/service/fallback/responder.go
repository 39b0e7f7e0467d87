package fallback

import "strings"

// InsufficientInformation is the generic answer used when no rule matches and
// the knowledge base offered nothing usable. It is always paired with a ticket.
const InsufficientInformation = "I'm sorry, but I don't have enough information to answer your question. I've created a support ticket for you, and our team will get back to you soon."

// minRelevantContentLen is the minimum length of retrieved knowledge content
// worth echoing back instead of the generic message
const minRelevantContentLen = 50

// Rule pairs a keyword set with a canned answer. A rule matches when the
// lower-cased question contains any of its keywords.
type Rule struct {
	Keywords []string `toml:"keywords"`
	Answer   string   `toml:"answer"`
}

func (r Rule) matches(questionLower string) bool {
	for _, keyword := range r.Keywords {
		if strings.Contains(questionLower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// Responder maps questions to canned answers when the completion service is
// unavailable. Rules are evaluated in order and the first match wins, so the
// rule sequence is a priority list.
type Responder struct {
	rules []Rule
}

// ResponderOption is a functional option for Responder configuration
type ResponderOption func(*Responder)

// WithRules replaces the default rule set
func WithRules(rules []Rule) ResponderOption {
	return func(r *Responder) {
		if len(rules) > 0 {
			r.rules = rules
		}
	}
}

// NewResponder creates a Responder with the built-in rule set unless overridden
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond returns a canned answer for the question. When no rule matches it
// falls back to the first section of the retrieved knowledge content if that
// content is substantial, and to the generic insufficient-information message
// otherwise. It never returns an empty string.
func (r *Responder) Respond(question, relevantContent string) string {
	questionLower := strings.ToLower(question)

	for _, rule := range r.rules {
		if rule.matches(questionLower) {
			return rule.Answer
		}
	}

	if len(relevantContent) > minRelevantContentLen {
		sections := strings.Split(relevantContent, "\n\n")
		if len(sections) > 0 && sections[0] != "" {
			return sections[0]
		}
	}

	return InsufficientInformation
}
