package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/middlewares"
	"github.com/vkotenko/blogsrv/internal/services"
)

// PostDeleter defines the interface that the post deletion service must implement.
type PostDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeletePostHandler returns the handler for GET /delete/{postID}.
// Deletion removes the post's comments with it.
func NewDeletePostHandler(svc PostDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), postID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			logger.Log.Errorw("failed to delete post", "post_id", postID, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
