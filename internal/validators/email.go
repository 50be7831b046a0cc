package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a host part that actually
// resolves. MX is the real signal; a plain A/AAAA record is accepted as a
// fallback since small clinics sometimes run mail off the web host.
func IsEmailDomainValid(email string) bool {
	host, ok := emailHost(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(host); err == nil && len(ips) > 0 {
		return true
	}
	return false
}

func emailHost(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	host := email[at+1:]
	if strings.ContainsAny(host, " \t") {
		return "", false
	}
	return host, true
}
