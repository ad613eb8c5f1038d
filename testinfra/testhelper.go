package testinfra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// BuildSession builds a test session with the given identity.
func BuildSession(uid types.ID, name string) *session.Session {
	return &session.Session{Token: "test-token", Identity: session.Identity{ID: uid, Name: name},
		Context: context.Background()}
}

// ExecuteRequest runs the request through the router and returns the
// recorded status, body and response.
func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, *http.Response) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	return resp.StatusCode, w.Body.String(), resp
}
