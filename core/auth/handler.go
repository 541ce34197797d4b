package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/mayatech/storefront/api/web"
	"github.com/mayatech/storefront/api/weberr"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/core/user"
	"github.com/mayatech/storefront/validate"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Session struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

func HandleRegister(users *user.Store, session *scs.SessionManager, toasts *notify.Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in RegisterRequest
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Unprocessable(err)
		}

		u, token, err := users.Register(ctx, in.Email, in.Password, in.Name)
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				toasts.Push(notify.Error, "Registration failed: "+err.Error()+".")
				return weberr.NewError(err, err.Error(), http.StatusConflict)
			}
			return fmt.Errorf("registering user: %w", err)
		}

		if err := login(ctx, session, u.ID, u.Role); err != nil {
			return fmt.Errorf("starting session: %w", err)
		}

		toasts.Push(notify.Success, fmt.Sprintf("Account created successfully! Welcome, %s!", u.Name))
		return web.Respond(ctx, w, Session{User: u, Token: token}, http.StatusCreated)
	}
}

func HandleLogin(users *user.Store, session *scs.SessionManager, toasts *notify.Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in LoginRequest
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Unprocessable(err)
		}

		u, token, err := users.Authenticate(ctx, in.Email, in.Password)
		if err != nil {
			if errors.Is(err, user.ErrAuthFailed) {
				toasts.Push(notify.Error, "Login failed: "+err.Error()+".")
				return weberr.NotAuthorized(err)
			}
			return fmt.Errorf("authenticating user: %w", err)
		}

		if err := login(ctx, session, u.ID, u.Role); err != nil {
			return fmt.Errorf("starting session: %w", err)
		}

		toasts.Push(notify.Success, fmt.Sprintf("Welcome back, %s!", u.Name))
		return web.Respond(ctx, w, Session{User: u, Token: token}, http.StatusOK)
	}
}

func HandleLogout(users *user.Store, session *scs.SessionManager, toasts *notify.Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := users.Logout(); err != nil {
			return fmt.Errorf("logging out: %w", err)
		}
		if err := session.Destroy(ctx); err != nil {
			return fmt.Errorf("destroying session: %w", err)
		}

		toasts.Push(notify.Info, "You have been logged out.")
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
