// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentGroup is the predicate function for agentgroup builders.
type AgentGroup func(*sql.Selector)

// CallEvent is the predicate function for callevent builders.
type CallEvent func(*sql.Selector)

// CallRecord is the predicate function for callrecord builders.
type CallRecord func(*sql.Selector)

// CallSession is the predicate function for callsession builders.
type CallSession func(*sql.Selector)

// GroupMember is the predicate function for groupmember builders.
type GroupMember func(*sql.Selector)

// InboundRule is the predicate function for inboundrule builders.
type InboundRule func(*sql.Selector)

// OutboundRule is the predicate function for outboundrule builders.
type OutboundRule func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// Trunk is the predicate function for trunk builders.
type Trunk func(*sql.Selector)

// VoiceAgent is the predicate function for voiceagent builders.
type VoiceAgent func(*sql.Selector)
