package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cryptoprobe/internal/domain"
)

func TestAssertionError_Messages(t *testing.T) {
	tests := []struct {
		check string
		want  string
	}{
		{domain.CheckProviderInstalled, "system not deemed secure enough: alternate provider missing"},
		{domain.CheckUnlimitedStrength, "system not deemed secure enough: key-length policy insufficient"},
		{"custom", "system not deemed secure enough: custom"},
	}
	for _, tc := range tests {
		err := &domain.AssertionError{Check: tc.check}
		assert.EqualError(t, err, tc.want)
		assert.True(t, errors.Is(err, domain.ErrInsecureSystem))
	}
}
