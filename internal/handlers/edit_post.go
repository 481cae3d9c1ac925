package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/middlewares"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/services"
	"github.com/vkotenko/blogsrv/internal/web"
)

// PostUpdater defines the interface that the post update service must implement.
type PostUpdater interface {
	Update(ctx context.Context, id int64, form models.PostForm) error
}

// NewEditPostHandler returns the handler for GET,POST /edit-post/{postID}.
// The creation date is never rewritten; only title, subtitle, image URL
// and body change.
func NewEditPostHandler(posts PostGetter, svc PostUpdater, view Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if err := services.RequireAdmin(user); err != nil {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		postID, ok := postIDParam(r)
		if !ok {
			http.NotFound(w, r)
			return
		}

		if r.Method != http.MethodPost {
			post, err := posts.Get(r.Context(), postID)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					http.NotFound(w, r)
					return
				}
				logger.Log.Errorw("failed to get post", "post_id", postID, "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			view.Render(w, r, "make-post.page.html", &web.PageData{
				Title: "Edit Post",
				Form: postFormValues(models.PostForm{
					Title:    post.Title,
					Subtitle: post.Subtitle,
					ImgURL:   post.ImgURL,
					Body:     post.Body,
				}),
			})
			return
		}

		form := models.PostForm{
			Title:    r.PostFormValue("title"),
			Subtitle: r.PostFormValue("subtitle"),
			ImgURL:   r.PostFormValue("img_url"),
			Body:     r.PostFormValue("body"),
		}

		if errs := form.Validate(); errs != nil {
			view.Render(w, r, "make-post.page.html", &web.PageData{
				Title:  "Edit Post",
				Errors: errs,
				Form:   postFormValues(form),
			})
			return
		}

		if err := svc.Update(r.Context(), postID, form); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				http.NotFound(w, r)
			case errors.Is(err, services.ErrTitleExists):
				view.Render(w, r, "make-post.page.html", &web.PageData{
					Title:  "Edit Post",
					Errors: map[string]string{"Title": "A post with this title already exists."},
					Form:   postFormValues(form),
				})
			default:
				logger.Log.Errorw("failed to update post", "post_id", postID, "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
	}
}
