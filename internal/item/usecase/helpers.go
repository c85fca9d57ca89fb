package usecase

import (
	pkgErrors "item-api/pkg/errors"
)

// asStorageError tags untagged repository failures as storage errors so the
// delivery layer never sees an unknown kind from this package.
func asStorageError(op string, err error) error {
	if pkgErrors.KindOf(err) == pkgErrors.KindStorage {
		return err
	}
	return pkgErrors.NewStorageError(op, err)
}
