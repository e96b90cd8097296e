package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess  = 0 // Ranking produced
	ExitBadInput = 1 // Invalid preferences or configuration
	ExitError    = 2 // Runtime error
)

// BadInputError indicates the user supplied invalid preferences or
// configuration, as opposed to a runtime failure.
type BadInputError struct {
	Message string
}

func (e *BadInputError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var badInput *BadInputError
		if errors.As(err, &badInput) {
			os.Exit(ExitBadInput)
		}

		os.Exit(ExitError)
	}
}
