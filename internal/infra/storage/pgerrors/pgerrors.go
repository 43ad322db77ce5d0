// Package pgerrors sorts PostgreSQL and driver errors into the few classes
// the repositories report to callers.
package pgerrors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
)

type Kind int

const (
	KindOther Kind = iota
	KindNoRows
	KindPermissionDenied
	KindTableMissing
	KindUnavailable
)

const (
	codeInsufficientPrivilege = "42501"
	codeUndefinedTable        = "42P01"
	codeAdminShutdown         = "57P01"
	codeCannotConnectNow      = "57P03"
	classConnectionException  = "08"
)

// Classify returns the class of err.
func Classify(err error) Kind {
	if err == nil {
		return KindOther
	}

	if errors.Is(err, sql.ErrNoRows) {
		return KindNoRows
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == codeInsufficientPrivilege:
			return KindPermissionDenied
		case pqErr.Code == codeUndefinedTable:
			return KindTableMissing
		case pqErr.Code == codeAdminShutdown, pqErr.Code == codeCannotConnectNow,
			pqErr.Code.Class() == classConnectionException:
			return KindUnavailable
		}
		return KindOther
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return KindUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindUnavailable
	}

	return KindOther
}
