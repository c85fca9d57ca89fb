package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "item-api/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unavailable sends 503 with data wrapped in Resp.
func Unavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: ServiceUnavailableCode,
		Message:   DefaultErrorMessage,
		Data:      data,
	})
}

// JSON sends data as-is, without the Resp envelope.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Created sends 201 with an empty body.
func Created(c *gin.Context) {
	c.Status(http.StatusCreated)
}

// NewErrorResp maps err onto a status code and ErrorResp. Validation errors
// carry their field details; every other kind collapses to a generic body
// whose only detail is serverMsg, so no internal error text is exposed.
func NewErrorResp(err error, serverMsg string) (int, ErrorResp) {
	kind := pkgErrors.KindOf(err)

	switch kind {
	case pkgErrors.KindValidation:
		details := map[string][]string(pkgErrors.FieldsOf(err).Compact())
		return pkgErrors.HTTPStatus(kind), ErrorResp{
			Error:   pkgErrors.Code(kind),
			Details: details,
		}
	case pkgErrors.KindStorage, pkgErrors.KindConfig, pkgErrors.KindUnknown:
		fallthrough
	default:
		if serverMsg == "" {
			serverMsg = DefaultErrorMessage
		}
		return pkgErrors.HTTPStatus(kind), ErrorResp{
			Error:   pkgErrors.Code(kind),
			Details: map[string][]string{DetailServer: {serverMsg}},
		}
	}
}

// Fail writes the ErrorResp for err and aborts the handler chain.
func Fail(c *gin.Context, err error, serverMsg string) {
	status, body := NewErrorResp(err, serverMsg)
	c.AbortWithStatusJSON(status, body)
}
