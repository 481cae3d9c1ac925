package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/vkotenko/blogsrv/internal/logger"
	"github.com/vkotenko/blogsrv/internal/models"
	"github.com/vkotenko/blogsrv/internal/services"
	"github.com/vkotenko/blogsrv/internal/web"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, error)
}

// Sessioner issues session tokens and manages the session cookie.
type Sessioner interface {
	Issue(ctx context.Context, userID int64) (string, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// NewRegisterHandler returns the handler for GET,POST /register. A new
// user is logged in immediately after registering. A duplicate username
// or email leaves no partial row and redirects to the login page with a
// flash message.
func NewRegisterHandler(svc Registerer, sessions Sessioner, view Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			view.Render(w, r, "register.page.html", &web.PageData{Title: "Register"})
			return
		}

		form := models.RegisterForm{
			Username: r.PostFormValue("username"),
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}

		if errs := form.Validate(); errs != nil {
			view.Render(w, r, "register.page.html", &web.PageData{
				Title:  "Register",
				Errors: errs,
				Form: map[string]string{
					"username": form.Username,
					"email":    form.Email,
				},
			})
			return
		}

		user, err := svc.Register(r.Context(), form.Username, form.Email, form.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserExists) {
				web.SetFlash(w, "The email already exists in the data base")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		token, err := sessions.Issue(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to issue session", "err", err)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		sessions.SetCookie(w, token)

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
