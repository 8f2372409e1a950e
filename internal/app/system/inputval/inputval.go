// internal/app/system/inputval/inputval.go
//
// Package inputval validates untrusted request input.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a syntactically valid bare email address.
// Parsing follows RFC 5322 (single-label domains are allowed), with stricter
// dot-placement rules than the RFC's quoted forms permit: no leading,
// trailing, or consecutive dots in either the local part or the domain.
// Display-name forms ("Name <a@b.com>") are rejected.
func IsValidEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// ParseAddress accepts display names and surrounding whitespace; require
	// the input to be exactly the bare address.
	if addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	return wellDotted(local) && wellDotted(domain)
}

func wellDotted(part string) bool {
	return !strings.HasPrefix(part, ".") &&
		!strings.HasSuffix(part, ".") &&
		!strings.Contains(part, "..")
}
