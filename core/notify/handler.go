package notify

import (
	"context"
	"net/http"

	"github.com/mayatech/storefront/api/web"
)

func HandleList(c *Center) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, c.Active(), http.StatusOK)
	}
}
