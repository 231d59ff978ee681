package pattern

import "fmt"

// Strategy selects how near-matching names are grouped into templates.
type Strategy string

const (
	// StrategyGreedy walks the names once in input order. Results depend on
	// input order and are not guaranteed to use the fewest templates.
	StrategyGreedy Strategy = "greedy"

	// StrategyComponents groups names into connected components of near-matches
	// first, so a chain of names varying in the same segment always collapses
	// into one template regardless of order.
	StrategyComponents Strategy = "components"
)

// ParseStrategy converts a configuration value into a Strategy.
// An empty value selects StrategyGreedy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyComponents:
		return StrategyComponents, nil
	default:
		return "", &ConfigError{Field: "strategy", Message: "must be one of: greedy, components", Value: s}
	}
}

// Config holds consolidation settings.
type Config struct {
	// Strategy is "greedy" (default) or "components"
	Strategy Strategy `yaml:"strategy"`
}

// DefaultConfig returns the greedy single-pass configuration.
func DefaultConfig() Config {
	return Config{Strategy: StrategyGreedy}
}

// Validate validates the Config values.
func (c *Config) Validate() error {
	_, err := ParseStrategy(string(c.Strategy))
	return err
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pattern.%s: %s (got %v)", e.Field, e.Message, e.Value)
}
