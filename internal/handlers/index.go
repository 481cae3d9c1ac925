package handlers

import (
	"context"
	"net/http"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/web"
)

// PostLister defines the interface that the post listing service must implement.
type PostLister interface {
	List(ctx context.Context) ([]models.PostDB, error)
}

// NewIndexHandler returns the handler for GET /.
func NewIndexHandler(svc PostLister, view Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list posts", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		view.Render(w, r, "index.page.html", &web.PageData{
			Title: "The Blog",
			Posts: posts,
		})
	}
}
