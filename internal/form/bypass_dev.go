//go:build devbypass

package form

import (
	"net"
	"net/url"
	"strings"
)

// bypassAllowed reports whether endpoint is a loopback host, where a
// devbypass build skips the request and pretends the endpoint accepted it.
func bypassAllowed(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
