package delivery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
)

var (
	// ErrInvalidScheme is returned when the target URL scheme is not http or https.
	ErrInvalidScheme = errors.New("target URL must use http or https scheme")
	// ErrPrivateTarget is returned when the target resolves to a loopback,
	// private, link-local or reserved address.
	ErrPrivateTarget = errors.New("target URL cannot resolve to private or internal IP addresses")
	// ErrInvalidURL is returned when the target URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid target URL")
)

// reserved lists the ranges that the Go net package does not classify but
// that must never be dialed.
var reserved = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
}

// ValidateURL checks that rawURL is an http(s) URL whose host does not
// resolve to an internal address.
func ValidateURL(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		return ErrInvalidURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidScheme
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("%w: missing hostname", ErrInvalidURL)
	}
	if isLocalhost(host) {
		return ErrPrivateTarget
	}

	if ip := net.ParseIP(host); ip != nil {
		return ValidateIP(ip)
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve hostname: %v", ErrInvalidURL, err)
	}
	for _, a := range addrs {
		if err := ValidateIP(a.IP); err != nil {
			return err
		}
	}

	return nil
}

// ValidateIP returns ErrPrivateTarget when ip must not be dialed.
func ValidateIP(ip net.IP) error {
	if isInternal(ip) {
		return ErrPrivateTarget
	}
	return nil
}

func isLocalhost(host string) bool {
	host = strings.ToLower(host)
	return host == "localhost" ||
		host == "localhost.localdomain" ||
		strings.HasSuffix(host, ".localhost")
}

func isInternal(ip net.IP) bool {
	if ip.IsLoopback() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsMulticast() {
		return true
	}

	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return false
	}
	addr = addr.Unmap()
	for _, p := range reserved {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}
