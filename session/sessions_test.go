package session_test

import (
	"net/http"
	"net/http/httptest"
	"planboard/bizerror"
	"planboard/session"
	"planboard/testinfra"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func TestSimpleAuthFilter(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	router.GET("/whoami", session.SimpleAuthFilter(), func(c *gin.Context) {
		s := session.ExtractSessionFromGinContext(c)
		c.JSON(http.StatusOK, s.Identity)
	})

	t.Run("request without token cookie is unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(body).To(MatchJSON(`{"code": "common.unauthenticated", "message": "unauthenticated", "data": null}`))
	})

	t.Run("unknown token is unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: session.KeySecToken, Value: "expired-token"})
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusUnauthorized))
	})

	t.Run("cached token resolves to its identity", func(t *testing.T) {
		s := testinfra.BuildSession(30, "user 30")
		session.TokenCache.SetDefault(s.Token, s)
		defer session.TokenCache.Delete(s.Token)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: session.KeySecToken, Value: s.Token})
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id": "30", "name": "user 30"}`))
	})
}

func TestExtractSessionFromGinContext(t *testing.T) {
	RegisterTestingT(t)

	t.Run("missing session falls back to an anonymous one", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		s := session.ExtractSessionFromGinContext(c)
		Expect(s).ToNot(BeNil())
		Expect(s.Token).To(BeZero())
		Expect(s.Context).ToNot(BeNil())
	})

	t.Run("injected session is cloned with the request context", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		session.InjectSessionIntoGinContext(c, testinfra.BuildSession(30, "user 30"))

		s := session.ExtractSessionFromGinContext(c)
		Expect(s.Identity.Name).To(Equal("user 30"))
		Expect(s.Context).To(Equal(c.Request.Context()))
	})
}
