package content

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"syscall"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStore      Kind = "store"
)

const (
	MsgConnection = "Tidak dapat terhubung ke database. Periksa koneksi internet atau konfigurasi database."
	MsgGeneric    = "Terjadi kesalahan pada database"
)

// ErrNotFound matches any *Error of KindNotFound under errors.Is.
var ErrNotFound = errors.New("not found")

// Error carries a message fit to show the admin alongside the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

func invalid(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: ErrNotFound}
}

// storeError logs err and converts it into a user-facing *Error.
func storeError(op string, err error) *Error {
	log.Error().Err(err).Str("op", op).Msg("Store operation failed")
	return &Error{Kind: KindStore, Message: userMessage(err), Err: err}
}

func userMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Message != "" {
		return pqErr.Message
	}
	if isConnectivity(err) {
		return MsgConnection
	}
	return MsgGeneric
}

func isConnectivity(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, context.DeadlineExceeded)
}
