package api

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/mayatech/storefront/api/middleware"
	"github.com/mayatech/storefront/api/web"
	"github.com/mayatech/storefront/core/auth"
	"github.com/mayatech/storefront/core/cart"
	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/core/checkout"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/core/user"
	"github.com/mayatech/storefront/rate"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin      string
	Log             logrus.FieldLogger
	Session         *scs.SessionManager
	Catalog         *catalog.Store
	Cart            *cart.Cart
	Users           *user.Store
	Toasts          *notify.Center
	AuthLimiter     *rate.Limiter
	CheckoutLatency time.Duration
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	authen := auth.Authenticate(cfg.Session)
	admin := auth.Admin(cfg.Session)

	var limited web.Middleware
	if cfg.AuthLimiter != nil {
		limited = middleware.RateLimit(cfg.AuthLimiter)
	}

	a.Handle(http.MethodPost, "/auth/register", auth.HandleRegister(cfg.Users, cfg.Session, cfg.Toasts), limited)
	a.Handle(http.MethodPost, "/auth/login", auth.HandleLogin(cfg.Users, cfg.Session, cfg.Toasts), limited)
	a.Handle(http.MethodPost, "/auth/logout", auth.HandleLogout(cfg.Users, cfg.Session, cfg.Toasts), authen)

	a.Handle(http.MethodGet, "/users/current", user.HandleShowCurrent(cfg.Users), authen)
	a.Handle(http.MethodGet, "/users/current/orders", user.HandleListOrders(cfg.Users), authen)

	a.Handle(http.MethodGet, "/products/categories", catalog.HandleListCategories(cfg.Catalog))
	a.Handle(http.MethodGet, "/products/{id}", catalog.HandleShowProduct(cfg.Catalog))
	a.Handle(http.MethodGet, "/products", catalog.HandleListProducts(cfg.Catalog))
	a.Handle(http.MethodPost, "/products", catalog.HandleCreateProduct(cfg.Catalog, cfg.Toasts), admin)

	a.Handle(http.MethodGet, "/courses/enrolled", user.HandleListEnrolled(cfg.Users, cfg.Catalog), authen)
	a.Handle(http.MethodPost, "/courses/{id}/enroll", user.HandleEnroll(cfg.Users, cfg.Catalog, cfg.Toasts), authen)
	a.Handle(http.MethodGet, "/courses/{id}", catalog.HandleShowCourse(cfg.Catalog))
	a.Handle(http.MethodGet, "/courses", catalog.HandleListCourses(cfg.Catalog))
	a.Handle(http.MethodPost, "/courses", catalog.HandleCreateCourse(cfg.Catalog, cfg.Toasts), admin)

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.Cart), authen)
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(cfg.Cart), authen)
	a.Handle(http.MethodPut, "/cart/items", cart.HandleCreateItem(cfg.Cart, cfg.Catalog, cfg.Toasts), authen)
	a.Handle(http.MethodPut, "/cart/items/{product_id}", cart.HandleUpdateItem(cfg.Cart), authen)
	a.Handle(http.MethodDelete, "/cart/items/{product_id}", cart.HandleDeleteItem(cfg.Cart), authen)

	a.Handle(http.MethodPost, "/checkout", checkout.HandlePlaceOrder(cfg.Users, cfg.Cart, cfg.Toasts, cfg.CheckoutLatency), authen)

	a.Handle(http.MethodGet, "/notifications", notify.HandleList(cfg.Toasts))

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
