package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	client, _ := fakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/local", r.URL.Path)
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "jdoe", body["identifier"])
		w.Write([]byte(`{"jwt":"cms-jwt","user":{"id":5,"username":"jdoe","email":"j@doe.org"}}`))
	})

	sess, err := client.Login(context.Background(), "jdoe", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "cms-jwt", sess.JWT)
	assert.Equal(t, 5, sess.User.ID)
}

func TestRegister_SurfacesCMSMessage(t *testing.T) {
	client, _ := fakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Email or Username are already taken"}}`))
	})

	_, err := client.Register(context.Background(), "jdoe", "j@doe.org", "secret123")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Email or Username are already taken", authErr.Message)
}

func TestChangePassword_SendsBearer(t *testing.T) {
	client, _ := fakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/change-password", r.URL.Path)
		assert.Equal(t, "Bearer user-jwt", r.Header.Get("Authorization"))
		w.Write([]byte(`{"jwt":"fresh-jwt","user":{"id":5}}`))
	})

	sess, err := client.ChangePassword(context.Background(), "user-jwt", "old", "newpassword", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, "fresh-jwt", sess.JWT)
}

func TestMe(t *testing.T) {
	client, _ := fakeCMS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		assert.Equal(t, "Bearer user-jwt", r.Header.Get("Authorization"))
		assert.Equal(t, "*", r.URL.Query().Get("populate[ProfileImage][populate]"))
		w.Write([]byte(`{"id":5,"username":"jdoe","FirstName":"Jane"}`))
	})

	user, err := client.Me(context.Background(), "user-jwt")
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.FirstName)
}
