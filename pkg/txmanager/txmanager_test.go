package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	conflict := &pq.Error{Code: serializationFailure}

	assert.True(t, isSerializationFailure(conflict))
	assert.True(t, isSerializationFailure(fmt.Errorf("%w: commit", conflict)))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, isSerializationFailure(errors.New("boom")))
	assert.False(t, isSerializationFailure(nil))
}

func TestGetExecutor_FallbackWithoutTx(t *testing.T) {
	var fallback Executor
	assert.Nil(t, GetExecutor(context.Background(), fallback))
}
