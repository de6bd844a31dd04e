package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("failed to generate: %w", NewPrerequisite("doctors"))

	assert.Equal(t, ErrPrerequisite, CodeOf(wrapped))
	assert.True(t, IsPrerequisite(wrapped))
	assert.False(t, IsCancelled(wrapped))
	assert.Equal(t, ErrInternal, CodeOf(errors.New("plain")))
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(NewCancelled("cleanup")))
	assert.False(t, IsCancelled(nil))
}

func TestAppError_Message(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewConnection("MongoDB", cause)

	assert.Equal(t, "failed to connect to MongoDB: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no patients found", NewPrerequisite("patients").Error())
	assert.Equal(t, "appointment generation cancelled by user", NewCancelled("appointment generation").Error())
}
