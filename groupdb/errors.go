// SPDX-License-Identifier: MIT

package groupdb

import "errors"

var (
	// ErrNotOpen indicates a lookup on a closed DB.
	ErrNotOpen = errors.New("groupdb: database is not open")

	// ErrUnknownGroup indicates a group type missing from the DB.
	ErrUnknownGroup = errors.New("groupdb: unknown group")

	// ErrUnknownRep indicates representation labels missing from the DB.
	ErrUnknownRep = errors.New("groupdb: unknown representation")

	// ErrBadFrobenius indicates a Frobenius-Schur indicator outside {-1, 0, 1}.
	ErrBadFrobenius = errors.New("groupdb: invalid Frobenius-Schur indicator")

	// ErrInvalidStore indicates a malformed store file.
	ErrInvalidStore = errors.New("groupdb: invalid store")

	// ErrAbelian indicates a representation lookup on U(1).
	ErrAbelian = errors.New("groupdb: abelian group has no representation table")
)
