package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/w3net/internal/keys"
)

func TestAuthCommandsRoundTrip(t *testing.T) {
	prev := authStore
	authStore = keys.NewMemStore()
	defer func() { authStore = prev }()

	require.NoError(t, authSetCmd.RunE(authSetCmd, []string{"node.example", "tok-123"}))
	require.NoError(t, authSetCmd.RunE(authSetCmd, []string{"other.example", "tok-456"}))

	hosts, err := tokenStore().Hosts()
	require.NoError(t, err)
	assert.Equal(t, []string{"node.example", "other.example"}, hosts)

	require.NoError(t, authListCmd.RunE(authListCmd, nil))

	require.NoError(t, authRmCmd.RunE(authRmCmd, []string{"node.example"}))
	hosts, err = tokenStore().Hosts()
	require.NoError(t, err)
	assert.Equal(t, []string{"other.example"}, hosts)
}

func TestAuthListEmptyStore(t *testing.T) {
	prev := authStore
	authStore = keys.NewMemStore()
	defer func() { authStore = prev }()

	require.NoError(t, authListCmd.RunE(authListCmd, nil))
}
