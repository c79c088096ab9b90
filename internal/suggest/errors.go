package suggest

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed caller input, such as a non-positive
// threshold or a negative stock quantity. Numeric edge cases inside
// otherwise valid data never surface as errors.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}
