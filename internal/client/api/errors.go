package api

import "errors"

var (
	// ErrUnauthenticated covers 401/403 responses. The caller treats it as
	// session expiry regardless of which call produced it.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrServer covers every other non-2xx response.
	ErrServer = errors.New("server error")

	// ErrNetwork covers transport failures before any status was received.
	ErrNetwork = errors.New("network error")
)
