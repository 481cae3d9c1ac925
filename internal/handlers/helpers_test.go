package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/vkotenko/blogsrv/internal/middlewares"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/web"
)

// fakeSessioner records session activity without real signing.
type fakeSessioner struct {
	token string
	err   error

	issuedFor  int64
	setCalls   int
	clearCalls int
}

func (f *fakeSessioner) Issue(ctx context.Context, userID int64) (string, error) {
	f.issuedFor = userID
	return f.token, f.err
}

func (f *fakeSessioner) SetCookie(w http.ResponseWriter, token string) {
	f.setCalls++
	http.SetCookie(w, &http.Cookie{Name: "session", Value: token, Path: "/"})
}

func (f *fakeSessioner) ClearCookie(w http.ResponseWriter) {
	f.clearCalls++
	http.SetCookie(w, &http.Cookie{Name: "session", Value: "", Path: "/", MaxAge: -1})
}

func mustTemplates(t *testing.T) *web.Templates {
	t.Helper()
	ts, err := web.NewTemplates()
	assert.NoError(t, err)
	return ts
}

// formRequest builds a POST with an urlencoded form body.
func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withPostID attaches the chi URL parameter the handlers read.
func withPostID(req *http.Request, id int64) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postID", strconv.FormatInt(id, 10))
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// asUser attaches an authenticated user to the request context.
func asUser(req *http.Request, user *models.UserDB) *http.Request {
	return req.WithContext(middlewares.WithUser(req.Context(), user))
}

// flashMessage decodes the flash cookie set on the response, if any.
func flashMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == web.FlashCookieName && c.Value != "" {
			decoded, err := base64.URLEncoding.DecodeString(c.Value)
			assert.NoError(t, err)
			return string(decoded)
		}
	}
	return ""
}
