package http

import (
	pkgErrors "item-api/pkg/errors"
)

// Server-side messages returned in place of the underlying cause.
const (
	msgFetchFailed  = "Failed to fetch items"
	msgCreateFailed = "Failed to create item"
)

// serverFault reports whether err is worth a server-side log line. Validation
// errors are the caller's fault; every other kind is a server fault.
func (h *handler) serverFault(err error) bool {
	switch pkgErrors.KindOf(err) {
	case pkgErrors.KindValidation:
		return false
	case pkgErrors.KindStorage, pkgErrors.KindConfig, pkgErrors.KindUnknown:
		return true
	default:
		return true
	}
}
