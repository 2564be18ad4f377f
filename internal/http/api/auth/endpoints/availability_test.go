package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/http/api"
)

func availabilityRouter(t *testing.T, handler http.HandlerFunc) (*gin.Engine, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"}, AvailabilityModule(cms.New(srv.URL, "")))
	return r, &hits
}

func userList(usernames ...string) []byte {
	users := make([]map[string]any, 0, len(usernames))
	for i, name := range usernames {
		users = append(users, map[string]any{"id": i + 1, "username": name})
	}
	body, _ := json.Marshal(users)
	return body
}

func TestCheckUsername_ShortNamesNeverReachUpstream(t *testing.T) {
	r, hits := availabilityRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write(userList())
	})

	for _, username := range []string{"", "a", "ab", "%20ab%20"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/check-username?username="+username, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"available":false,"error":"Username too short"}`, w.Body.String())
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestCheckUsername_Taken(t *testing.T) {
	r, _ := availabilityRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write(userList("mona"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check-username?username=mona", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":false}`, w.Body.String())
}

func TestCheckUsername_Free(t *testing.T) {
	r, _ := availabilityRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write(userList())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check-username?username=newcomer", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":true}`, w.Body.String())
}

func TestCheckUsername_FailsOpenWhenUpstreamDown(t *testing.T) {
	r, _ := availabilityRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check-username?username=anyone", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":true,"fallback":true}`, w.Body.String())
}

func TestCheckEmail_RejectsAddressWithoutAtSign(t *testing.T) {
	r, hits := availabilityRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write(userList())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check-email?email=not-an-address", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"available":false,"error":"Invalid email"}`, w.Body.String())
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestCheckEmail_Free(t *testing.T) {
	r, _ := availabilityRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write(userList())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check-email?email=new%40example.org", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":true}`, w.Body.String())
}
