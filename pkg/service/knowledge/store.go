package knowledge

import (
	"context"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/utils/logging"
)

const (
	// MissingCorpus is served instead of corpus content when the knowledge file
	// cannot be read. Retrieval must keep working against it.
	MissingCorpus = "Knowledge base not found."

	// NoRelevantInformation is returned when no section shares a token with the query
	NoRelevantInformation = "No relevant information found in knowledge base."

	// topSections is the number of highest scoring sections joined into the result
	topSections = 3
)

// Store serves keyword retrieval over a plain-text knowledge corpus. Sections
// are blank-line delimited blocks of the corpus file. The corpus is cached
// process-wide after the first load and invalidated only by an explicit Reload.
type Store struct {
	path string

	mu     sync.RWMutex
	corpus string
	loaded bool
}

// New creates a Store reading the corpus from the given file path
func New(path string) *Store {
	return &Store{path: path}
}

// Corpus returns the cached corpus content, loading it on first use. A missing
// or unreadable file degrades to the MissingCorpus sentinel instead of failing.
func (s *Store) Corpus(ctx context.Context) string {
	s.mu.RLock()
	if s.loaded {
		corpus := s.corpus
		s.mu.RUnlock()
		return corpus
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.corpus = s.load(ctx)
		s.loaded = true
	}
	return s.corpus
}

// Reload discards the cached corpus and reads the file again
func (s *Store) Reload(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return goerr.Wrap(err, "failed to reload knowledge corpus", goerr.V("path", s.path))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.corpus = string(data)
	s.loaded = true
	return nil
}

func (s *Store) load(ctx context.Context) string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logging.From(ctx).Warn("knowledge corpus is not available, serving sentinel content",
			"path", s.path,
			"error", err.Error(),
		)
		return MissingCorpus
	}
	return string(data)
}

// Search returns the most relevant corpus content for the query
func (s *Store) Search(ctx context.Context, query string) string {
	return Search(query, s.Corpus(ctx))
}

type scoredSection struct {
	section string
	score   int
}

// Search scores each blank-line delimited section of the corpus by the number
// of query tokens it contains and returns the top sections joined by a blank
// line. Tokens are matched as lower-cased substrings, not on word boundaries:
// "pay" matches inside "payment".
func Search(query, corpus string) string {
	keywords := strings.Fields(strings.ToLower(query))
	sections := strings.Split(corpus, "\n\n")

	var scored []scoredSection
	for _, section := range sections {
		sectionLower := strings.ToLower(section)
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(sectionLower, keyword) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, scoredSection{section: section, score: score})
		}
	}

	if len(scored) == 0 {
		return NoRelevantInformation
	}

	// Stable: equal scores keep original document order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := topSections
	if limit > len(scored) {
		limit = len(scored)
	}

	parts := make([]string, limit)
	for i := 0; i < limit; i++ {
		parts[i] = scored[i].section
	}
	return strings.Join(parts, "\n\n")
}
