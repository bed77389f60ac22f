package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("checkout: %w", NotFound("gone"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "gone", MessageOf(err))
}

func TestKindOfForeignError(t *testing.T) {
	err := errors.New("plain")
	assert.Equal(t, KindUnknown, KindOf(err))
	assert.Equal(t, genericFailure, MessageOf(err))
}

func TestPersistenceHidesCause(t *testing.T) {
	cause := errors.New("pq: relation \"cars\" does not exist")
	err := Persistence(cause)
	assert.Equal(t, KindPersistence, KindOf(err))
	assert.Equal(t, genericFailure, MessageOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestConstructorsSetKind(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
	}{
		{Validation("v"), KindValidation},
		{NotFound("n"), KindNotFound},
		{Forbidden("f"), KindForbidden},
		{BadRequest("b"), KindBadRequest},
		{ErrEmptyCart, KindBadRequest},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, KindOf(tt.err), tt.err.Error())
	}
}
