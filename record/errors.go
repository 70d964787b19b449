package record

import (
	"fmt"
	"strings"

	"record-forge/internal/diagnostic"
	"record-forge/internal/synth"
)

// Sentinels for call-time failures. Check with errors.Is.
var (
	// ErrArgument reports wrong arity, a keyword-only violation, or an
	// unexpected field at construction or access time.
	ErrArgument = synth.ErrArgument
	// ErrImmutable reports any write or delete on a frozen instance.
	ErrImmutable = synth.ErrImmutable
	// ErrUnhashable reports a hash over an unhashable field value, or a
	// hash request on a type without a generated hash.
	ErrUnhashable = synth.ErrUnhashable
	// ErrUnsupportedComparison reports ordering across unrelated types or
	// on a type without generated ordering.
	ErrUnsupportedComparison = synth.ErrUnsupportedComparison
)

// ConfigurationError reports an invalid type definition: bad option
// combinations, invalid declarations, or a name collision between a
// user-supplied member and a generated function. Type definition either
// succeeds completely or fails with one of these.
type ConfigurationError struct {
	// TypeName is the record type whose definition failed.
	TypeName string
	// Problems lists every configuration problem found.
	Problems []string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("record type %q misconfigured: %s",
		e.TypeName, strings.Join(e.Problems, "; "))
}

// newConfigurationError folds accumulated diagnostics into one error.
func newConfigurationError(typeName string, diags *diagnostic.Diagnostics) *ConfigurationError {
	e := &ConfigurationError{TypeName: typeName}
	for _, d := range diags.Errors {
		e.Problems = append(e.Problems, d.String())
	}
	return e
}

// configProblem reports a call-time use of a behavior the type's option
// set did not generate.
func configProblem(typeName, problem string) *ConfigurationError {
	return &ConfigurationError{TypeName: typeName, Problems: []string{problem}}
}
