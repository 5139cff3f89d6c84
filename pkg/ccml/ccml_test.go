package ccml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialVoiceAgent(t *testing.T) {
	doc := DialVoiceAgent(AgentEndpoint{
		Provider:     "vapi",
		ServiceValue: "asst_1",
	}, "+1999")

	assert.True(t, strings.HasPrefix(doc, Header))
	assert.Contains(t, doc, `<Service provider="vapi">asst_1</Service>`)
	assert.Contains(t, doc, `callerId="+1999"`)
	assert.NotContains(t, doc, "username")
	require.NoError(t, Validate(doc))
}

func TestDialVoiceAgentWithAuth(t *testing.T) {
	doc := DialVoiceAgent(AgentEndpoint{
		Provider:     "custom_sip",
		ServiceValue: "sip:agent@example.com",
		Username:     "user",
		Password:     "secret",
	}, "")

	assert.Contains(t, doc, `username="user"`)
	assert.Contains(t, doc, `password="secret"`)
	assert.NotContains(t, doc, "callerId")
	require.NoError(t, Validate(doc))
}

func TestDialVoiceAgentEscapesContent(t *testing.T) {
	doc := DialVoiceAgent(AgentEndpoint{
		Provider:     "vapi",
		ServiceValue: `a<b>&"c`,
	}, `+1"999`)

	assert.NotContains(t, doc, `a<b>`)
	assert.Contains(t, doc, "a&lt;b&gt;&amp;")
	require.NoError(t, Validate(doc))
}

func TestDialTrunk(t *testing.T) {
	doc := DialTrunk("+4930123456", &TrunkDial{
		TrunkIDs:    []string{"tk-1", "tk-2"},
		RingTimeout: 25,
		MaxDuration: 3600,
	}, "+1555")

	assert.Contains(t, doc, `trunks="tk-1,tk-2"`)
	assert.Contains(t, doc, `timeout="25"`)
	assert.Contains(t, doc, `maxDuration="3600"`)
	assert.Contains(t, doc, `callerId="+1555"`)
	assert.Contains(t, doc, `<Number>+4930123456</Number>`)
	require.NoError(t, Validate(doc))
}

func TestDialTrunkMinimal(t *testing.T) {
	doc := DialTrunk("+4930123456", nil, "")
	assert.Contains(t, doc, `<Dial><Number>+4930123456</Number></Dial>`)
	require.NoError(t, Validate(doc))
}

func TestHangup(t *testing.T) {
	doc := Hangup()
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`, doc)
	require.NoError(t, Validate(doc))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong root", `<Hangup/>`},
		{"empty response", `<Response></Response>`},
		{"two children", `<Response><Hangup/><Hangup/></Response>`},
		{"dial without leg", `<Response><Dial></Dial></Response>`},
		{"dial with two legs", `<Response><Dial><Number>1</Number><Number>2</Number></Dial></Response>`},
		{"forbidden verb", `<Response><Say>hi</Say></Response>`},
		{"nested forbidden", `<Response><Dial><Hangup/></Dial></Response>`},
		{"truncated", `<Response><Dial>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.doc))
		})
	}
}

func TestProviders(t *testing.T) {
	assert.True(t, ValidProvider("vapi"))
	assert.True(t, ValidProvider("custom_sip"))
	assert.False(t, ValidProvider("unknown"))

	for p := range map[string]bool{"custom_sip": true, "byoc": true, "pipecat": true} {
		assert.True(t, RequiresAuth(p))
		assert.True(t, ValidProvider(p), "auth provider %s must be in the provider set", p)
	}
	assert.False(t, RequiresAuth("vapi"))
}
