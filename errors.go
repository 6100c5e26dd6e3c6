package hxdrop

import (
	"errors"
	"net/http"

	"github.com/pthm/hxdrop/selection"
)

// Sentinel errors for picker requests.
var (
	ErrNotFound         = errors.New("hxdrop: resource not found")
	ErrDecryptFailed    = errors.New("hxdrop: state decryption failed")
	ErrSignatureInvalid = errors.New("hxdrop: signature verification failed")
	ErrInvalidFormat    = errors.New("hxdrop: invalid request format")
	ErrNotRegistered    = errors.New("hxdrop: picker is not registered")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsBadRequest checks if err was caused by the request rather than the
// server: malformed input, a bad token, or a contract violation such as an
// out-of-range removal index.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		IsDecryptionError(err) ||
		selection.IsInvalidArgument(err) ||
		selection.IsOutOfRange(err)
}

// StatusCode maps err to the HTTP status the default error handler uses.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsBadRequest(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
