package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/middlewares"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/services"
	"github.com/vkotenko/blogsrv/internal/web"
)

// PostCreator defines the interface that the post creation service must implement.
type PostCreator interface {
	Create(ctx context.Context, authorID int64, form models.PostForm) (int64, error)
}

// postFormValues rebuilds the form map for re-rendering after an error.
func postFormValues(form models.PostForm) map[string]string {
	return map[string]string{
		"title":    form.Title,
		"subtitle": form.Subtitle,
		"img_url":  form.ImgURL,
		"body":     form.Body,
	}
}

// NewNewPostHandler returns the handler for GET,POST /new-post. The admin
// guard runs on every request; everyone else gets a hard 403.
func NewNewPostHandler(svc PostCreator, view Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if err := services.RequireAdmin(user); err != nil {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		if r.Method != http.MethodPost {
			view.Render(w, r, "make-post.page.html", &web.PageData{Title: "New Post"})
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
				Title:  "New Post",
				Errors: errs,
				Form:   postFormValues(form),
			})
			return
		}

		if _, err := svc.Create(r.Context(), user.ID, form); err != nil {
			if errors.Is(err, services.ErrTitleExists) {
				view.Render(w, r, "make-post.page.html", &web.PageData{
					Title:  "New Post",
					Errors: map[string]string{"Title": "A post with this title already exists."},
					Form:   postFormValues(form),
				})
				return
			}
			logger.Log.Errorw("failed to create post", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
