package provider

import (
	"net"
	"strings"
)

// ResolveSlugFromHost derives a state slug from a request host such as
// "telangana.filemyrti.com:8080". It needs at least three labels and
// returns the lowercased first one. IP literals never resolve.
func ResolveSlugFromHost(host string) (string, bool) {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" || net.ParseIP(host) != nil {
		return "", false
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 || labels[0] == "" {
		return "", false
	}
	return strings.ToLower(labels[0]), true
}
