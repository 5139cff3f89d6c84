package routing

import (
	"fmt"
	"sort"
	"strings"
)

// maxPatternLen bounds number patterns; long "patterns" are almost always a
// copy-paste of something that is not a number.
const maxPatternLen = 24

// ValidatePattern rejects empty, non-ASCII-printable, or overlong patterns.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if len(pattern) > maxPatternLen {
		return fmt.Errorf("pattern exceeds %d characters", maxPatternLen)
	}
	for _, r := range pattern {
		if r < 0x20 || r > 0x7e {
			return fmt.Errorf("pattern contains non-printable or non-ASCII character %q", r)
		}
	}
	return nil
}

// PatternMatches tests a rule pattern against a number. A pattern with a
// leading + is a full E.164 number and matches only on equality; anything
// else is a prefix, matching either bare or with a + prepended.
func PatternMatches(pattern, number string) bool {
	if strings.HasPrefix(pattern, "+") {
		return pattern == number
	}
	return strings.HasPrefix(number, pattern) || strings.HasPrefix(number, "+"+pattern)
}

// sortInboundRules orders rules by priority descending, ties broken by id
// ascending (insertion order).
func sortInboundRules(rules []InboundRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority > rules[j].Priority
		}
		return rules[i].ID < rules[j].ID
	})
}

// MatchInbound returns the first enabled rule whose pattern matches the
// destination, in priority order, or nil.
func MatchInbound(rules []InboundRule, destination string) *InboundRule {
	sortInboundRules(rules)
	for i := range rules {
		if !rules[i].Enabled {
			continue
		}
		if PatternMatches(rules[i].Pattern, destination) {
			return &rules[i]
		}
	}
	return nil
}

func sortOutboundRules(rules []OutboundRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority > rules[j].Priority
		}
		return rules[i].ID < rules[j].ID
	})
}

// IsOutbound classifies a call: outbound iff any enabled outbound rule's
// caller_id pattern matches the incoming caller id.
func IsOutbound(rules []OutboundRule, callerID string) bool {
	for i := range rules {
		if rules[i].Enabled && PatternMatches(rules[i].CallerID, callerID) {
			return true
		}
	}
	return false
}

// MatchOutbound returns the first enabled rule matching both the caller id
// and the destination, in priority order, or nil.
func MatchOutbound(rules []OutboundRule, callerID, destination string) *OutboundRule {
	sortOutboundRules(rules)
	for i := range rules {
		if !rules[i].Enabled {
			continue
		}
		if PatternMatches(rules[i].CallerID, callerID) &&
			PatternMatches(rules[i].DestinationPattern, destination) {
			return &rules[i]
		}
	}
	return nil
}
