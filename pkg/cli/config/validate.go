package config

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// Validator is a configuration section that can report its problems
type Validator interface {
	Validate() []error
}

// Validate checks all sections and returns every problem at once
func Validate(sections ...Validator) error {
	var errs []error
	for _, s := range sections {
		errs = append(errs, s.Validate()...)
	}
	if len(errs) == 0 {
		return nil
	}
	return goerr.Wrap(errors.Join(errs...), "invalid configuration", goerr.V("count", len(errs)))
}
