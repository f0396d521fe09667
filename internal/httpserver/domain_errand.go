package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	errandHTTP "errand-planner/internal/errand/delivery/http"
)

// setupErrandDomain registers /api/v1/errands/*.
func (srv HTTPServer) setupErrandDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := errandHTTP.New(srv.l, srv.errandUC)
	errandHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Errand domain registered")
	return nil
}
