package config

import (
	"github.com/urfave/cli/v3"

	"github.com/desklab/porter/pkg/service/knowledge"
)

// Knowledge holds CLI flags for the knowledge corpus
type Knowledge struct {
	path string
}

// Flags returns CLI flags for knowledge configuration
func (k *Knowledge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "knowledge-path",
			Usage:       "Path to the plain-text knowledge corpus",
			Value:       "knowledge.txt",
			Sources:     cli.EnvVars("PORTER_KNOWLEDGE_PATH"),
			Destination: &k.path,
		},
	}
}

// Configure returns the knowledge store. A missing corpus file is not an
// error here: the store degrades to sentinel content at read time.
func (k *Knowledge) Configure() *knowledge.Store {
	return knowledge.New(k.path)
}
