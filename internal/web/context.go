package web

import (
	"net"
	"net/http"

	"github.com/JonMunkholm/fakerecords/internal/core"
)

// clientInfo describes the caller of r. RemoteAddr has already been
// rewritten by TrustedRealIP when the request came through a trusted proxy.
func clientInfo(r *http.Request) core.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return core.ClientInfo{IP: ip, UserAgent: r.Header.Get("User-Agent")}
}
