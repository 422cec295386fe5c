package tcb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedKey is returned when a combined "host:port" key cannot be
// parsed back into an endpoint.
var ErrMalformedKey = errors.New("tcb: malformed key")

// Endpoint identifies one end of a connection.
//
// Host must not contain ':'. The combined key form joins host and port with
// a single ':' and is reversible only under that constraint; ParseKey splits
// on the first ':', so a delimiter inside the host lands in the port token
// and fails parsing instead of mis-parsing silently.
type Endpoint struct {
	Host string
	Port int
}

// Key returns the combined "<host>:<port>" cache key for the endpoint.
func (e Endpoint) Key() string {
	return e.Host + ":" + strconv.Itoa(e.Port)
}

func (e Endpoint) String() string { return e.Key() }

// ParseKey parses a combined "<host>:<port>" key back into an endpoint.
//
// The port must be a decimal integer in [0, 65535]. The range check is
// stricter than a bare integer parse; it rejects keys that could never name
// a real port.
func ParseKey(key string) (Endpoint, error) {
	host, portTok, ok := strings.Cut(key, ":")
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %q: missing ':' delimiter", ErrMalformedKey, key)
	}
	if host == "" {
		return Endpoint{}, fmt.Errorf("%w: %q: empty host", ErrMalformedKey, key)
	}
	port, err := strconv.Atoi(portTok)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %q: invalid port %q", ErrMalformedKey, key, portTok)
	}
	if port < 0 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: %q: port %d out of range", ErrMalformedKey, key, port)
	}
	return Endpoint{Host: host, Port: port}, nil
}
