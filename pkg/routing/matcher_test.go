package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, ValidatePattern("+1234567890"))
	assert.NoError(t, ValidatePattern("49"))

	assert.Error(t, ValidatePattern(""))
	assert.Error(t, ValidatePattern("1234567890123456789012345")) // 25 chars
	assert.Error(t, ValidatePattern("+49\n30"))
	assert.Error(t, ValidatePattern("+49ü"))
}

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		pattern, number string
		want            bool
	}{
		// Full E.164: equality only.
		{"+1234567890", "+1234567890", true},
		{"+1234567890", "+12345678901", false},
		{"+1234567890", "1234567890", false},
		// Prefix: bare or with + prepended.
		{"49", "4930123456", true},
		{"49", "+4930123456", true},
		{"49", "+14930123456", false},
		{"1800", "+18005551234", true},
		{"1800", "+19005551234", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PatternMatches(tt.pattern, tt.number),
			"pattern %q vs %q", tt.pattern, tt.number)
	}
}

func TestMatchInboundOrder(t *testing.T) {
	rules := []InboundRule{
		{ID: "r3", Pattern: "49", Priority: 1, Enabled: true, TargetID: "low"},
		{ID: "r1", Pattern: "49", Priority: 10, Enabled: true, TargetID: "high"},
		{ID: "r2", Pattern: "49", Priority: 10, Enabled: true, TargetID: "tied-later"},
	}

	m := MatchInbound(rules, "+4930123456")
	require.NotNil(t, m)
	// Highest priority wins; ties broken by id ascending (insertion order).
	assert.Equal(t, "r1", m.ID)
}

func TestMatchInboundSkipsDisabled(t *testing.T) {
	rules := []InboundRule{
		{ID: "r1", Pattern: "+1234567890", Priority: 10, Enabled: false},
		{ID: "r2", Pattern: "123", Priority: 1, Enabled: true},
	}
	m := MatchInbound(rules, "+1234567890")
	require.NotNil(t, m)
	assert.Equal(t, "r2", m.ID)
}

func TestMatchInboundNoMatch(t *testing.T) {
	rules := []InboundRule{
		{ID: "r1", Pattern: "+1234567890", Priority: 1, Enabled: true},
	}
	assert.Nil(t, MatchInbound(rules, "+9999"))
	assert.Nil(t, MatchInbound(nil, "+9999"))
}

func TestOutboundClassification(t *testing.T) {
	rules := []OutboundRule{
		{ID: "o1", CallerID: "+1555", DestinationPattern: "49", Enabled: true},
	}

	assert.True(t, IsOutbound(rules, "+1555"))
	assert.False(t, IsOutbound(rules, "+1666"))

	m := MatchOutbound(rules, "+1555", "+4930123456")
	require.NotNil(t, m)
	assert.Equal(t, "o1", m.ID)

	assert.Nil(t, MatchOutbound(rules, "+1555", "+15551234"))
}
