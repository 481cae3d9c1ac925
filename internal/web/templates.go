package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/middlewares"
	"github.com/vkotenko/blogsrv/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData carries everything a page template can render.
type PageData struct {
	Title       string
	Flash       string
	CurrentUser *models.UserDB
	Post        *models.PostDB
	Posts       []models.PostDB
	Comments    []models.CommentDB
	// Form holds submitted values so a failed form re-renders filled in.
	Form map[string]string
	// Errors holds per-field validation messages.
	Errors map[string]string
}

// Templates renders pages against the embedded layout.
type Templates struct {
	pages map[string]*template.Template
}

var functions = template.FuncMap{
	// Post bodies and comments come from a rich-text editor; they are
	// stored as HTML and rendered as-is.
	"raw": func(s string) template.HTML {
		return template.HTML(s)
	},
}

// NewTemplates parses the embedded layout and page templates.
func NewTemplates() (*Templates, error) {
	pageFiles, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template)
	for _, f := range pageFiles {
		name := f.Name()
		if name == "base.layout.html" {
			continue
		}
		ts, err := template.New(name).Funcs(functions).ParseFS(
			templateFS, "templates/base.layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[name] = ts
	}

	return &Templates{pages: pages}, nil
}

// Render writes the named page to the response. The current user and any
// pending flash message are filled in if the handler did not set them.
// The page is rendered to a buffer first so a template error becomes a
// clean 500 instead of a half-written body.
func (t *Templates) Render(w http.ResponseWriter, r *http.Request, page string, data *PageData) {
	if data == nil {
		data = &PageData{}
	}
	if data.CurrentUser == nil {
		data.CurrentUser = middlewares.UserFromContext(r.Context())
	}
	if data.Flash == "" {
		data.Flash = PopFlash(w, r)
	}

	ts, ok := t.pages[page]
	if !ok {
		logger.Log.Errorw("unknown template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		logger.Log.Errorw("failed to render template", "page", page, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	buf.WriteTo(w)
}
