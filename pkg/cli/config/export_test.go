package config

// NewRulesForTest creates a Rules config for testing purposes
func NewRulesForTest(path string) *Rules {
	return &Rules{path: path}
}
