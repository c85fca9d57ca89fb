package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-api/internal/item/delivery/http"
	itemRepo "item-api/internal/item/repository/sqlstore"
	itemUC "item-api/internal/item/usecase"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := itemRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/items
	itemHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
