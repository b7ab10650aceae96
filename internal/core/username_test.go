package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catppuccin-api/internal/types"
)

func TestUsernameStripsProfilePrefix(t *testing.T) {
	username, err := Username(types.Collaborator{URL: "https://github.com/sgoudham"})
	require.NoError(t, err)
	assert.Equal(t, "sgoudham", username)
}

func TestUsernameIsPureFunctionOfURL(t *testing.T) {
	a := types.Collaborator{Name: "One", URL: "https://github.com/someone"}
	b := types.Collaborator{Name: "Two", URL: "https://github.com/someone"}
	first, err := Username(a)
	require.NoError(t, err)
	second, err := Username(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUsernameRejectsForeignURL(t *testing.T) {
	tests := []string{
		"https://gitlab.com/someone",
		"http://github.com/someone",
		"github.com/someone",
		"",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, err := Username(types.Collaborator{URL: url})
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
		})
	}
}
