package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkotenko/blogsrv/internal/models"
)

type fakePostLister struct {
	posts []models.PostDB
	err   error
}

func (f *fakePostLister) List(ctx context.Context) ([]models.PostDB, error) {
	return f.posts, f.err
}

func TestIndexHandler(t *testing.T) {
	lister := &fakePostLister{posts: []models.PostDB{
		{ID: 1, Title: "Hello", Subtitle: "First", Author: "admin", Date: "August 29, 2026"},
		{ID: 2, Title: "Second post", Author: "admin", Date: "August 29, 2026"},
	}}
	handler := NewIndexHandler(lister, mustTemplates(t))

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Hello")
	assert.Contains(t, rr.Body.String(), "Second post")
	assert.Contains(t, rr.Body.String(), "August 29, 2026")
}

func TestIndexHandler_Empty(t *testing.T) {
	handler := NewIndexHandler(&fakePostLister{}, mustTemplates(t))

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No posts yet")
}

func TestIndexHandler_StorageError(t *testing.T) {
	handler := NewIndexHandler(&fakePostLister{err: errors.New("db down")}, mustTemplates(t))

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStaticPages(t *testing.T) {
	views := mustTemplates(t)

	t.Run("about", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewAboutHandler(views)(rr, httptest.NewRequest(http.MethodGet, "/about", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "About")
	})

	t.Run("contact", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewContactHandler(views)(rr, httptest.NewRequest(http.MethodGet, "/contact", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Contact")
	})
}
