package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/services"
)

type fakePostCreator struct {
	id  int64
	err error

	calls       int
	gotAuthorID int64
	gotForm     models.PostForm
}

func (f *fakePostCreator) Create(ctx context.Context, authorID int64, form models.PostForm) (int64, error) {
	f.calls++
	f.gotAuthorID = authorID
	f.gotForm = form
	return f.id, f.err
}

var admin = &models.UserDB{ID: 1, Username: "admin"}

func validPostForm() url.Values {
	return url.Values{
		"title":    {"Hello"},
		"subtitle": {"First post"},
		"img_url":  {"https://example.com/x.png"},
		"body":     {"<p>hi</p>"},
	}
}

func TestNewPostHandler_ForbiddenForAnonymous(t *testing.T) {
	svc := &fakePostCreator{}
	handler := NewNewPostHandler(svc, mustTemplates(t))

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/new-post", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Zero(t, svc.calls)
}

func TestNewPostHandler_ForbiddenForRegularUser(t *testing.T) {
	svc := &fakePostCreator{}
	handler := NewNewPostHandler(svc, mustTemplates(t))

	req := asUser(formRequest("/new-post", validPostForm()), &models.UserDB{ID: 2, Username: "alice"})
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Zero(t, svc.calls)
}

func TestNewPostHandler_AdminGET(t *testing.T) {
	handler := NewNewPostHandler(&fakePostCreator{}, mustTemplates(t))

	req := asUser(httptest.NewRequest(http.MethodGet, "/new-post", nil), admin)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "New Post")
}

func TestNewPostHandler_AdminCreate(t *testing.T) {
	svc := &fakePostCreator{id: 10}
	handler := NewNewPostHandler(svc, mustTemplates(t))

	req := asUser(formRequest("/new-post", validPostForm()), admin)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, int64(1), svc.gotAuthorID)
	assert.Equal(t, "Hello", svc.gotForm.Title)
}

func TestNewPostHandler_BadImageURL(t *testing.T) {
	svc := &fakePostCreator{}
	handler := NewNewPostHandler(svc, mustTemplates(t))

	form := validPostForm()
	form.Set("img_url", "not a url")

	req := asUser(formRequest("/new-post", form), admin)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "valid URL")
	assert.Zero(t, svc.calls)
}

func TestNewPostHandler_DuplicateTitle(t *testing.T) {
	svc := &fakePostCreator{err: services.ErrTitleExists}
	handler := NewNewPostHandler(svc, mustTemplates(t))

	req := asUser(formRequest("/new-post", validPostForm()), admin)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "already exists")
}
