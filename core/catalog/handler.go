package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mayatech/storefront/api/web"
	"github.com/mayatech/storefront/api/weberr"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/validate"
)

func priceParam(r *http.Request, key string) (*float64, error) {
	s := web.Query(r, key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, weberr.BadRequest(fmt.Errorf("parsing %s: %w", key, err))
	}
	return &v, nil
}

func HandleListProducts(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		min, err := priceParam(r, "min_price")
		if err != nil {
			return err
		}
		max, err := priceParam(r, "max_price")
		if err != nil {
			return err
		}

		f := ProductFilter{
			Query:     web.Query(r, "q"),
			Category:  web.Query(r, "category"),
			Condition: web.Query(r, "condition"),
			MinPrice:  min,
			MaxPrice:  max,
			Sort:      web.Query(r, "sort"),
		}

		return web.Respond(ctx, w, FilterProducts(store.Products(), f), http.StatusOK)
	}
}

func HandleShowProduct(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		p, err := store.Product(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(fmt.Errorf("product[%s]: %w", id, err))
			}
			return fmt.Errorf("fetching product[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func HandleCreateProduct(store *Store, toasts *notify.Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var np ProductNew
		if err := web.Decode(w, r, &np); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(np); err != nil {
			return weberr.Unprocessable(err)
		}

		p, err := store.AddProduct(np)
		if err != nil {
			return fmt.Errorf("adding product: %w", err)
		}

		toasts.Push(notify.Success, fmt.Sprintf("Product %q added to the catalog.", p.Name))
		return web.Respond(ctx, w, p, http.StatusCreated)
	}
}

func HandleListCategories(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Categories(), http.StatusOK)
	}
}

func HandleListCourses(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f := CourseFilter{
			Query:      web.Query(r, "q"),
			Difficulty: web.Query(r, "difficulty"),
		}

		return web.Respond(ctx, w, FilterCourses(store.Courses(), f), http.StatusOK)
	}
}

func HandleShowCourse(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")

		c, err := store.Course(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(fmt.Errorf("course[%s]: %w", id, err))
			}
			return fmt.Errorf("fetching course[%s]: %w", id, err)
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleCreateCourse(store *Store, toasts *notify.Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nc CourseNew
		if err := web.Decode(w, r, &nc); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(nc); err != nil {
			return weberr.Unprocessable(err)
		}

		c, err := store.AddCourse(nc)
		if err != nil {
			return fmt.Errorf("adding course: %w", err)
		}

		toasts.Push(notify.Success, fmt.Sprintf("Course %q added to the catalog.", c.Title))
		return web.Respond(ctx, w, c, http.StatusCreated)
	}
}
