package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zoobzio/capitan"
)

// ValidationError represents a roster validation error with detailed context.
type ValidationError struct { //nolint:govet
	Path    []string // Path to the error in the roster document
	Message string   // Error message
}

func (e ValidationError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, "."), e.Message)
}

// ValidationErrors collects multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidateRoster checks a roster without building it.
// Returns nil if valid, or ValidationErrors containing all issues found.
// Constructors themselves are total; validation is where declarative input
// gets rejected.
func ValidateRoster(roster Roster) error {
	start := time.Now()
	capitan.Emit(context.Background(), RosterValidationStarted)

	var errs ValidationErrors

	if len(roster.Entries) == 0 {
		errs = append(errs, ValidationError{
			Path:    []string{"entries"},
			Message: "roster has no entries",
		})
	}

	seen := make(map[string]int)
	for i, entry := range roster.Entries {
		path := []string{"entries", fmt.Sprintf("[%d]", i)}
		validateEntry(entry, path, &errs)

		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		// Registration keys by the bounded name, so collisions are detected
		// on the bounded form too.
		key := boundName(name)
		if first, dup := seen[key]; dup {
			errs = append(errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("duplicate name %q (first used at [%d])", entry.Name, first),
			})
		} else {
			seen[key] = i
		}
	}

	if len(errs) == 0 {
		capitan.Emit(context.Background(), RosterValidationCompleted,
			KeyDuration.Field(time.Since(start)))
		return nil
	}

	capitan.Emit(context.Background(), RosterValidationFailed,
		KeyErrorCount.Field(len(errs)),
		KeyDuration.Field(time.Since(start)))
	return errs
}

// validateEntry validates a single roster entry.
func validateEntry(entry Entry, path []string, errs *ValidationErrors) {
	switch entry.Kind {
	case KindPerson:
	case KindEmployee:
		if strings.TrimSpace(entry.Role) == "" {
			*errs = append(*errs, ValidationError{
				Path:    path,
				Message: "employee entry requires a role",
			})
		}
	case "":
		*errs = append(*errs, ValidationError{
			Path:    path,
			Message: "missing kind",
		})
	default:
		*errs = append(*errs, ValidationError{
			Path:    path,
			Message: fmt.Sprintf("unknown kind '%s'", entry.Kind),
		})
	}

	if strings.TrimSpace(entry.Name) == "" {
		*errs = append(*errs, ValidationError{
			Path:    path,
			Message: "missing name",
		})
	}

	if entry.Age < 0 {
		*errs = append(*errs, ValidationError{
			Path:    path,
			Message: fmt.Sprintf("age must not be negative, got %d", entry.Age),
		})
	}
}
