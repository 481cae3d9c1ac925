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

// PostGetter defines the interface that the post lookup service must implement.
type PostGetter interface {
	Get(ctx context.Context, id int64) (*models.PostDB, error)
}

// CommentLister defines per-post comment listing.
type CommentLister interface {
	ListForPost(ctx context.Context, postID int64) ([]models.CommentDB, error)
}

// CommentCreator defines comment creation.
type CommentCreator interface {
	Create(ctx context.Context, postID, authorID int64, body string) (int64, error)
}

// NewShowPostHandler returns the handler for GET,POST /post/{postID}.
// GET renders the post with only its own comments. POST adds a comment;
// anonymous submissions are redirected to the login page with a flash
// message and create nothing.
func NewShowPostHandler(posts PostGetter, comments CommentLister, creator CommentCreator, view Renderer) http.HandlerFunc {
	renderPost := func(w http.ResponseWriter, r *http.Request, post *models.PostDB, form models.CommentForm, errs map[string]string) {
		list, err := comments.ListForPost(r.Context(), post.ID)
		if err != nil {
			logger.Log.Errorw("failed to list comments", "post_id", post.ID, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		view.Render(w, r, "post.page.html", &web.PageData{
			Title:    post.Title,
			Post:     post,
			Comments: list,
			Errors:   errs,
			Form:     map[string]string{"body": form.Body},
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := postIDParam(r)
		if !ok {
			http.NotFound(w, r)
			return
		}

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

		if r.Method != http.MethodPost {
			renderPost(w, r, post, models.CommentForm{}, nil)
			return
		}

		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			web.SetFlash(w, "You need to be logged in to comment")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		form := models.CommentForm{Body: r.PostFormValue("body")}
		if errs := form.Validate(); errs != nil {
			renderPost(w, r, post, form, errs)
			return
		}

		if _, err := creator.Create(r.Context(), post.ID, user.ID, form.Body); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			logger.Log.Errorw("failed to create comment", "post_id", post.ID, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
