package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	cause := errors.New(`Get "http://backend/operators": dial tcp: lookup backend: no such host`)
	err := &TransportError{Route: "krooster_operators", Err: cause}

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, ErrUpstreamTransport)
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("forward: %w", err)
	assert.ErrorIs(t, wrapped, ErrUpstreamTransport)
	assert.NotErrorIs(t, cause, ErrUpstreamTransport)
}
