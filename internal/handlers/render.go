package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vkotenko/blogsrv/internal/web"
)

// Renderer writes a rendered page to the response.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, data *web.PageData)
}

// postIDParam parses the {postID} URL parameter. A non-numeric id is
// treated the same as a missing row.
func postIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
