package lookup

import (
	"errors"
	"fmt"
)

var errEmptyResponse = errors.New("fetcher returned no profile")

type panicError struct {
	value any
}

func (e panicError) Error() string {
	return fmt.Sprintf("fetcher panicked: %v", e.value)
}

// FailureMessage is the one message shown for every failed lookup.
const FailureMessage = "No results!!! User not found."
