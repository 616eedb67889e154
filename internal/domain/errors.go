package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderNotFound is returned when a provider name cannot be resolved
	// in the registry.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrAlgorithmUnsupported is returned when the key-length policy does not
	// recognise an algorithm.
	ErrAlgorithmUnsupported = errors.New("algorithm not supported")

	// ErrInsecureSystem is wrapped by every AssertionError.
	ErrInsecureSystem = errors.New("system not deemed secure enough")
)

var failureMessages = map[string]string{
	CheckProviderInstalled: "alternate provider missing",
	CheckUnlimitedStrength: "key-length policy insufficient",
}

// AssertionError reports which capability check failed during an assertion.
type AssertionError struct {
	Check string
}

func (e *AssertionError) Error() string {
	msg, ok := failureMessages[e.Check]
	if !ok {
		msg = e.Check
	}
	return fmt.Sprintf("%s: %s", ErrInsecureSystem, msg)
}

// Unwrap allows errors.Is(err, ErrInsecureSystem).
func (e *AssertionError) Unwrap() error { return ErrInsecureSystem }
