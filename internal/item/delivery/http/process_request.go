package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "item-api/pkg/errors"
)

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "item.delivery.http.processCreateReq: %v", err)
		return req, errMalformedBody
	}
	return req, req.validate(h.v)
}

var errMalformedBody = pkgErrors.NewValidationError(pkgErrors.FieldErrors{
	"body": {"Request body must be valid JSON"},
})
