package pattern

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Strategy != StrategyGreedy {
		t.Errorf("expected default strategy greedy, got %q", cfg.Strategy)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{input: "", want: StrategyGreedy},
		{input: "greedy", want: StrategyGreedy},
		{input: "components", want: StrategyComponents},
		{input: "Greedy", wantErr: true},
		{input: "optimal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected *ConfigError, got %T", err)
				}
				if cfgErr.Field != "strategy" {
					t.Errorf("Field = %q, want strategy", cfgErr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "empty strategy", config: Config{}},
		{name: "greedy", config: Config{Strategy: StrategyGreedy}},
		{name: "components", config: Config{Strategy: StrategyComponents}},
		{name: "unknown", config: Config{Strategy: "fastest"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "strategy", Message: "must be one of: greedy, components", Value: "fastest"}
	msg := err.Error()
	for _, want := range []string{"pattern.strategy", "greedy, components", "fastest"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}
