package mailer

import (
	"errors"
	"strings"
)

type errorHint struct {
	needles []string
	hint    string
}

var smtpHints = []errorHint{
	{
		needles: []string{"535", "authentication failed", "invalid login", "username and password not accepted", "badcredentials", "authenticat"},
		hint:    "The SMTP server rejected the username or password. Check the credentials, and use an app password if the provider requires one.",
	},
	{
		needles: []string{"domain not verified", "domain is not verified", "not verified", "sender address rejected", "550 5.7.1", "unverified"},
		hint:    "The sender domain or address is not verified with the email provider. Verify the domain (SPF/DKIM) or use a verified from address.",
	},
	{
		needles: []string{"tls", "ssl", "x509", "certificate", "handshake", "first record does not look like a tls handshake"},
		hint:    "TLS negotiation failed. Port 465 needs SSL enabled; ports 587 and 25 use STARTTLS with SSL disabled.",
	},
	{
		needles: []string{"rate limit", "too many", "421", "454", "quota", "throttl"},
		hint:    "The provider is rate limiting this account. Wait a few minutes before retrying or raise the sending quota.",
	},
	{
		needles: []string{"connection refused", "no such host", "i/o timeout", "timeout", "network is unreachable", "dial tcp", "eof"},
		hint:    "Could not reach the SMTP server. Check the host and port and that outbound SMTP is allowed from this server.",
	},
}

// HintFor returns a remediation hint for a known SMTP failure, or "" when none matches.
// Entries are checked in order, so more specific causes come first.
// Only the transport error is matched, never the recipient address.
func HintFor(err error) string {
	if err == nil {
		return ""
	}
	var sendErr *SendError
	if errors.As(err, &sendErr) && sendErr.Err != nil {
		err = sendErr.Err
	}
	msg := strings.ToLower(err.Error())
	for _, h := range smtpHints {
		for _, needle := range h.needles {
			if strings.Contains(msg, needle) {
				return h.hint
			}
		}
	}
	return ""
}
