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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, error)
}

// NewLoginHandler returns the handler for GET,POST /login. Wrong email
// and wrong password produce distinct flash messages; see the services
// error taxonomy for why the distinction is intentional.
func NewLoginHandler(svc Loginer, sessions Sessioner, view Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			view.Render(w, r, "login.page.html", &web.PageData{Title: "Log In"})
			return
		}

		form := models.LoginForm{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}

		if errs := form.Validate(); errs != nil {
			view.Render(w, r, "login.page.html", &web.PageData{
				Title:  "Log In",
				Errors: errs,
				Form:   map[string]string{"email": form.Email},
			})
			return
		}

		user, err := svc.Login(r.Context(), form.Email, form.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownEmail):
				web.SetFlash(w, "Incorrect email, please try again.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			case errors.Is(err, services.ErrWrongPassword):
				web.SetFlash(w, "Incorrect password. Please try again.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		token, err := sessions.Issue(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to issue session", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		sessions.SetCookie(w, token)

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
