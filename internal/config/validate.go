package config

import (
	"fmt"
	"regexp"
	"strings"
)

var codeKeyPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "invalid config"
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(e.Problems, "; "))
}

func Validate(cfg Config) error {
	problems := []string{}

	if cfg.Version != 1 {
		problems = append(problems, "version must be 1")
	}

	if strings.TrimSpace(cfg.Defaults.Scope) == "" {
		problems = append(problems, "defaults.scope must be set")
	}

	switch cfg.Defaults.Format {
	case FormatConsole, FormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("defaults.format must be %q or %q", FormatConsole, FormatJSON))
	}

	if strings.TrimSpace(cfg.Defaults.Subsystem) == "" {
		problems = append(problems, "defaults.subsystem must be set")
	}
	if strings.TrimSpace(cfg.Defaults.Category) == "" {
		problems = append(problems, "defaults.category must be set")
	}

	for code, label := range cfg.Codes.Errors {
		if !codeKeyPattern.MatchString(code) {
			problems = append(problems, fmt.Sprintf("codes.errors key %q has invalid format", code))
		}
		if strings.TrimSpace(label) == "" {
			problems = append(problems, fmt.Sprintf("codes.errors[%q] must not be empty", code))
		}
	}
	for reason, label := range cfg.Codes.DeletionReasons {
		if !codeKeyPattern.MatchString(reason) {
			problems = append(problems, fmt.Sprintf("codes.deletion_reasons key %q has invalid format", reason))
		}
		if strings.TrimSpace(label) == "" {
			problems = append(problems, fmt.Sprintf("codes.deletion_reasons[%q] must not be empty", reason))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
