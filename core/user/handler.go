package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mayatech/storefront/api/web"
	"github.com/mayatech/storefront/api/weberr"
	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/core/notify"
)

func HandleShowCurrent(users *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		u, err := users.Current()
		if err != nil {
			return weberr.NotAuthorized(err)
		}
		return web.Respond(ctx, w, u, http.StatusOK)
	}
}

func HandleListOrders(users *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		u, err := users.Current()
		if err != nil {
			return weberr.NotAuthorized(err)
		}
		return web.Respond(ctx, w, u.Orders, http.StatusOK)
	}
}

func HandleEnroll(users *Store, cat *catalog.Store, toasts *notify.Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		courseID := web.Param(r, "id")

		c, err := cat.Course(courseID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return weberr.NotFound(fmt.Errorf("course[%s]: %w", courseID, err))
			}
			return fmt.Errorf("fetching course[%s]: %w", courseID, err)
		}

		u, err := users.EnrollInCourse(c.ID)
		switch {
		case errors.Is(err, ErrAlreadyEnrolled):
			// informational only, nothing changed
			toasts.Push(notify.Info, "You are already enrolled in this course.")
			return web.Respond(ctx, w, u, http.StatusOK)
		case errors.Is(err, ErrNotLoggedIn):
			return weberr.NotAuthorized(err)
		case err != nil:
			return fmt.Errorf("enrolling in course[%s]: %w", c.ID, err)
		}

		toasts.Push(notify.Success, "Successfully enrolled in the course!")
		return web.Respond(ctx, w, u, http.StatusOK)
	}
}

func HandleListEnrolled(users *Store, cat *catalog.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		u, err := users.Current()
		if err != nil {
			return weberr.NotAuthorized(err)
		}

		courses := make([]catalog.Course, 0, len(u.EnrolledCourseIDs))
		for _, id := range u.EnrolledCourseIDs {
			c, err := cat.Course(id)
			if err != nil {
				// enrollment can outlive a cleared catalog key; skip the hole
				continue
			}
			courses = append(courses, c)
		}

		return web.Respond(ctx, w, courses, http.StatusOK)
	}
}
