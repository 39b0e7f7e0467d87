package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/desklab/porter/pkg/service/fallback"
)

// Rules holds CLI flags for the response rule configuration file. The file
// can override the built-in canned-answer rules and refusal phrase set:
//
//	refusal_phrases = ["i'm not sure", "i don't know"]
//
//	[[rule]]
//	keywords = ["password", "reset", "forgot"]
//	answer = "To reset your password, ..."
type Rules struct {
	path string
}

type rulesFile struct {
	RefusalPhrases []string        `toml:"refusal_phrases"`
	Rules          []fallback.Rule `toml:"rule"`
}

// Flags returns CLI flags for rules configuration
func (r *Rules) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "response-rules",
			Usage:       "TOML file overriding fallback rules and refusal phrases (optional)",
			Sources:     cli.EnvVars("PORTER_RESPONSE_RULES"),
			Destination: &r.path,
		},
	}
}

// Configure loads the rule file when one is configured. Empty results mean
// the built-in defaults stay in effect.
func (r *Rules) Configure() ([]fallback.Rule, []string, error) {
	if r.path == "" {
		return nil, nil, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to read response rules file", goerr.V("path", r.path))
	}

	var parsed rulesFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse response rules file", goerr.V("path", r.path))
	}

	for i, rule := range parsed.Rules {
		if len(rule.Keywords) == 0 {
			return nil, nil, goerr.New("rule without keywords", goerr.V("path", r.path), goerr.V("rule_index", i))
		}
		if rule.Answer == "" {
			return nil, nil, goerr.New("rule without answer", goerr.V("path", r.path), goerr.V("rule_index", i))
		}
	}

	return parsed.Rules, parsed.RefusalPhrases, nil
}
