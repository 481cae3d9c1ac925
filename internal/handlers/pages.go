package handlers

import (
	"net/http"

	"github.com/vkotenko/blogsrv/internal/web"
)

// NewAboutHandler returns the handler for GET /about.
func NewAboutHandler(view Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view.Render(w, r, "about.page.html", &web.PageData{Title: "About"})
	}
}

// NewContactHandler returns the handler for GET /contact.
func NewContactHandler(view Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view.Render(w, r, "contact.page.html", &web.PageData{Title: "Contact"})
	}
}
