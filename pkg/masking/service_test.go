package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskStringPatterns(t *testing.T) {
	s := NewService()

	masked := s.MaskString(`{"api_key": "sk_live_abcdefghij123456"}`)
	assert.Contains(t, masked, "__MASKED_API_KEY__")
	assert.NotContains(t, masked, "sk_live_abcdefghij123456")

	masked = s.MaskString(`password=supersecret1`)
	assert.Contains(t, masked, "__MASKED_PASSWORD__")
	assert.NotContains(t, masked, "supersecret1")
}

func TestMaskStringSIPURI(t *testing.T) {
	s := NewService()

	masked := s.MaskString("dialing sip:alice:s3cret@pbx.example.com;transport=udp")
	assert.Contains(t, masked, "sip:"+MaskedSIPUserinfo+"@pbx.example.com")
	assert.NotContains(t, masked, "s3cret")

	// Host survives for debuggability.
	assert.Contains(t, masked, "pbx.example.com")
}

func TestSIPURIMaskerAppliesTo(t *testing.T) {
	m := &SIPURIMasker{}
	assert.True(t, m.AppliesTo("SIP:user@host"))
	assert.True(t, m.AppliesTo("sips:user@host"))
	assert.False(t, m.AppliesTo("tel:+1999"))
}

func TestMaskMapSensitiveKeys(t *testing.T) {
	s := NewService()

	in := map[string]interface{}{
		"CallSid":  "CA1",
		"password": "hunter22",
		"ApiKey":   "sk_live_abcdefghij123456",
		"nested": map[string]interface{}{
			"Authorization": "Bearer abc",
			"endpoint":      "sip:bob:pw@host.example",
		},
	}
	out := s.MaskMap(in)

	assert.Equal(t, "CA1", out["CallSid"])
	assert.Equal(t, MaskedValue, out["password"])
	assert.Equal(t, MaskedValue, out["ApiKey"])

	nested := out["nested"].(map[string]interface{})
	assert.Equal(t, MaskedValue, nested["Authorization"])
	assert.NotContains(t, nested["endpoint"], "bob:pw")

	// Input untouched.
	assert.Equal(t, "hunter22", in["password"])
}

func TestMaskMapNil(t *testing.T) {
	s := NewService()
	assert.Nil(t, s.MaskMap(nil))
}
