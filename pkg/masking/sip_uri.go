package masking

import (
	"regexp"
	"strings"
)

// MaskedSIPUserinfo replaces the userinfo part of a SIP URI.
const MaskedSIPUserinfo = "__MASKED_SIP_CREDENTIALS__"

// sipUserinfoRegex matches the userinfo of sip:/sips: URIs, with or without
// an embedded password (sip:user@host, sip:user:pass@host).
var sipUserinfoRegex = regexp.MustCompile(`(?i)\b(sips?:)([^@\s;>]+)@`)

// SIPURIMasker is a code-based masker for SIP URIs. Regex credential
// patterns miss these because the secret sits inside the URI userinfo, not
// behind a key=value shape.
type SIPURIMasker struct{}

// Name returns the unique identifier for this masker.
func (m *SIPURIMasker) Name() string { return "sip_uri" }

// AppliesTo checks cheaply for a SIP scheme.
func (m *SIPURIMasker) AppliesTo(data string) bool {
	lower := strings.ToLower(data)
	return strings.Contains(lower, "sip:") || strings.Contains(lower, "sips:")
}

// Mask replaces every SIP URI userinfo with a fixed marker, keeping the
// scheme and host so logs stay debuggable.
func (m *SIPURIMasker) Mask(data string) string {
	return sipUserinfoRegex.ReplaceAllString(data, "${1}"+MaskedSIPUserinfo+"@")
}
