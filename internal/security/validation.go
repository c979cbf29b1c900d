// Package security provides validation for user-supplied image locations.
package security

import (
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
)

// ValidateImageURL checks that a remote image URL is HTTPS and does not
// point at a loopback, private or link-local address.
func ValidateImageURL(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if !strings.EqualFold(parsed.Scheme, "https") {
		return fmt.Errorf("only HTTPS URLs are allowed (got %s)", parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return fmt.Errorf("URL must have a hostname")
	}
	if isLocalOrPrivateHost(host) {
		return fmt.Errorf("URL cannot point to local or private hosts: %s", host)
	}

	return nil
}

// isLocalOrPrivateHost reports whether host is localhost or a literal
// loopback, private, link-local or unspecified address. Names other than
// localhost are not resolved.
func isLocalOrPrivateHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	ip := net.IP(addr.AsSlice())
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}
