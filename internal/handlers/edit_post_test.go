package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/services"
)

type fakePostUpdater struct {
	err error

	calls   int
	gotID   int64
	gotForm models.PostForm
}

func (f *fakePostUpdater) Update(ctx context.Context, id int64, form models.PostForm) error {
	f.calls++
	f.gotID = id
	f.gotForm = form
	return f.err
}

func TestEditPostHandler_ForbiddenForNonAdmin(t *testing.T) {
	svc := &fakePostUpdater{}
	handler := NewEditPostHandler(&fakePostGetter{post: testPost}, svc, mustTemplates(t))

	req := withPostID(httptest.NewRequest(http.MethodGet, "/edit-post/10", nil), 10)
	req = asUser(req, &models.UserDB{ID: 2})

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Zero(t, svc.calls)
}

func TestEditPostHandler_AdminGET_PrefillsForm(t *testing.T) {
	handler := NewEditPostHandler(&fakePostGetter{post: testPost}, &fakePostUpdater{}, mustTemplates(t))

	req := withPostID(httptest.NewRequest(http.MethodGet, "/edit-post/10", nil), 10)
	req = asUser(req, admin)

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Edit Post")
	assert.Contains(t, rr.Body.String(), testPost.Title)
	assert.Contains(t, rr.Body.String(), testPost.ImgURL)
}

func TestEditPostHandler_AdminUpdate(t *testing.T) {
	svc := &fakePostUpdater{}
	handler := NewEditPostHandler(&fakePostGetter{post: testPost}, svc, mustTemplates(t))

	form := validPostForm()
	form.Set("title", "Updated title")

	req := withPostID(formRequest("/edit-post/10", form), 10)
	req = asUser(req, admin)

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/post/10", rr.Header().Get("Location"))
	assert.Equal(t, int64(10), svc.gotID)
	assert.Equal(t, "Updated title", svc.gotForm.Title)
}

func TestEditPostHandler_MissingPost(t *testing.T) {
	handler := NewEditPostHandler(&fakePostGetter{err: services.ErrNotFound}, &fakePostUpdater{err: services.ErrNotFound}, mustTemplates(t))

	req := withPostID(httptest.NewRequest(http.MethodGet, "/edit-post/404", nil), 404)
	req = asUser(req, admin)

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
