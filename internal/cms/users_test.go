package cms

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameTaken(t *testing.T) {
	client, _ := fakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "JDoe", r.URL.Query().Get("filters[username][$eqi]"))
		assert.Equal(t, "username", r.URL.Query().Get("fields[0]"))
		w.Write([]byte(`[{"id":1,"username":"jdoe"}]`))
	})

	taken, err := client.UsernameTaken(context.Background(), "  JDoe  ")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUsernameTaken_Free(t *testing.T) {
	client, _ := fakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	taken, err := client.UsernameTaken(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestEmailTaken_ErrorPropagates(t *testing.T) {
	client, _ := fakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := client.EmailTaken(context.Background(), "a@b.org")
	assert.Error(t, err)
}
