// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/voxroute/voxroute/ent/agentgroup"
	"github.com/voxroute/voxroute/ent/callevent"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/groupmember"
	"github.com/voxroute/voxroute/ent/inboundrule"
	"github.com/voxroute/voxroute/ent/outboundrule"
	"github.com/voxroute/voxroute/ent/schema"
	"github.com/voxroute/voxroute/ent/tenant"
	"github.com/voxroute/voxroute/ent/trunk"
	"github.com/voxroute/voxroute/ent/voiceagent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentgroupFields := schema.AgentGroup{}.Fields()
	_ = agentgroupFields
	// agentgroupDescEnabled is the schema descriptor for enabled field.
	agentgroupDescEnabled := agentgroupFields[5].Descriptor()
	// agentgroup.DefaultEnabled holds the default value on creation for the enabled field.
	agentgroup.DefaultEnabled = agentgroupDescEnabled.Default.(bool)
	// agentgroupDescCreatedAt is the schema descriptor for created_at field.
	agentgroupDescCreatedAt := agentgroupFields[6].Descriptor()
	// agentgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentgroup.DefaultCreatedAt = agentgroupDescCreatedAt.Default.(func() time.Time)
	// agentgroupDescUpdatedAt is the schema descriptor for updated_at field.
	agentgroupDescUpdatedAt := agentgroupFields[7].Descriptor()
	// agentgroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentgroup.DefaultUpdatedAt = agentgroupDescUpdatedAt.Default.(func() time.Time)
	// agentgroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentgroup.UpdateDefaultUpdatedAt = agentgroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	calleventFields := schema.CallEvent{}.Fields()
	_ = calleventFields
	// calleventDescOccurredAt is the schema descriptor for occurred_at field.
	calleventDescOccurredAt := calleventFields[6].Descriptor()
	// callevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	callevent.DefaultOccurredAt = calleventDescOccurredAt.Default.(func() time.Time)
	callrecordFields := schema.CallRecord{}.Fields()
	_ = callrecordFields
	// callrecordDescDurationSeconds is the schema descriptor for duration_seconds field.
	callrecordDescDurationSeconds := callrecordFields[11].Descriptor()
	// callrecord.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	callrecord.DefaultDurationSeconds = callrecordDescDurationSeconds.Default.(int)
	// callrecordDescBilledSeconds is the schema descriptor for billed_seconds field.
	callrecordDescBilledSeconds := callrecordFields[12].Descriptor()
	// callrecord.DefaultBilledSeconds holds the default value on creation for the billed_seconds field.
	callrecord.DefaultBilledSeconds = callrecordDescBilledSeconds.Default.(int)
	// callrecordDescCreatedAt is the schema descriptor for created_at field.
	callrecordDescCreatedAt := callrecordFields[14].Descriptor()
	// callrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	callrecord.DefaultCreatedAt = callrecordDescCreatedAt.Default.(func() time.Time)
	// callrecordDescUpdatedAt is the schema descriptor for updated_at field.
	callrecordDescUpdatedAt := callrecordFields[15].Descriptor()
	// callrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	callrecord.DefaultUpdatedAt = callrecordDescUpdatedAt.Default.(func() time.Time)
	// callrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	callrecord.UpdateDefaultUpdatedAt = callrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	callsessionFields := schema.CallSession{}.Fields()
	_ = callsessionFields
	// callsessionDescStartedAt is the schema descriptor for started_at field.
	callsessionDescStartedAt := callsessionFields[8].Descriptor()
	// callsession.DefaultStartedAt holds the default value on creation for the started_at field.
	callsession.DefaultStartedAt = callsessionDescStartedAt.Default.(func() time.Time)
	// callsessionDescDurationSeconds is the schema descriptor for duration_seconds field.
	callsessionDescDurationSeconds := callsessionFields[11].Descriptor()
	// callsession.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	callsession.DefaultDurationSeconds = callsessionDescDurationSeconds.Default.(int)
	// callsessionDescUpdatedAt is the schema descriptor for updated_at field.
	callsessionDescUpdatedAt := callsessionFields[16].Descriptor()
	// callsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	callsession.DefaultUpdatedAt = callsessionDescUpdatedAt.Default.(func() time.Time)
	// callsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	callsession.UpdateDefaultUpdatedAt = callsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	groupmemberFields := schema.GroupMember{}.Fields()
	_ = groupmemberFields
	// groupmemberDescPriority is the schema descriptor for priority field.
	groupmemberDescPriority := groupmemberFields[3].Descriptor()
	// groupmember.DefaultPriority holds the default value on creation for the priority field.
	groupmember.DefaultPriority = groupmemberDescPriority.Default.(int)
	// groupmember.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	groupmember.PriorityValidator = func() func(int) error {
		validators := groupmemberDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// groupmemberDescCapacity is the schema descriptor for capacity field.
	groupmemberDescCapacity := groupmemberFields[4].Descriptor()
	// groupmember.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	groupmember.CapacityValidator = func() func(int) error {
		validators := groupmemberDescCapacity.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(capacity int) error {
			for _, fn := range fns {
				if err := fn(capacity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	inboundruleFields := schema.InboundRule{}.Fields()
	_ = inboundruleFields
	// inboundruleDescPattern is the schema descriptor for pattern field.
	inboundruleDescPattern := inboundruleFields[2].Descriptor()
	// inboundrule.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	inboundrule.PatternValidator = inboundruleDescPattern.Validators[0].(func(string) error)
	// inboundruleDescPriority is the schema descriptor for priority field.
	inboundruleDescPriority := inboundruleFields[5].Descriptor()
	// inboundrule.DefaultPriority holds the default value on creation for the priority field.
	inboundrule.DefaultPriority = inboundruleDescPriority.Default.(int)
	// inboundruleDescEnabled is the schema descriptor for enabled field.
	inboundruleDescEnabled := inboundruleFields[6].Descriptor()
	// inboundrule.DefaultEnabled holds the default value on creation for the enabled field.
	inboundrule.DefaultEnabled = inboundruleDescEnabled.Default.(bool)
	// inboundruleDescCreatedAt is the schema descriptor for created_at field.
	inboundruleDescCreatedAt := inboundruleFields[7].Descriptor()
	// inboundrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	inboundrule.DefaultCreatedAt = inboundruleDescCreatedAt.Default.(func() time.Time)
	outboundruleFields := schema.OutboundRule{}.Fields()
	_ = outboundruleFields
	// outboundruleDescCallerID is the schema descriptor for caller_id field.
	outboundruleDescCallerID := outboundruleFields[2].Descriptor()
	// outboundrule.CallerIDValidator is a validator for the "caller_id" field. It is called by the builders before save.
	outboundrule.CallerIDValidator = outboundruleDescCallerID.Validators[0].(func(string) error)
	// outboundruleDescDestinationPattern is the schema descriptor for destination_pattern field.
	outboundruleDescDestinationPattern := outboundruleFields[3].Descriptor()
	// outboundrule.DestinationPatternValidator is a validator for the "destination_pattern" field. It is called by the builders before save.
	outboundrule.DestinationPatternValidator = outboundruleDescDestinationPattern.Validators[0].(func(string) error)
	// outboundruleDescPriority is the schema descriptor for priority field.
	outboundruleDescPriority := outboundruleFields[5].Descriptor()
	// outboundrule.DefaultPriority holds the default value on creation for the priority field.
	outboundrule.DefaultPriority = outboundruleDescPriority.Default.(int)
	// outboundruleDescEnabled is the schema descriptor for enabled field.
	outboundruleDescEnabled := outboundruleFields[6].Descriptor()
	// outboundrule.DefaultEnabled holds the default value on creation for the enabled field.
	outboundrule.DefaultEnabled = outboundruleDescEnabled.Default.(bool)
	// outboundruleDescCreatedAt is the schema descriptor for created_at field.
	outboundruleDescCreatedAt := outboundruleFields[7].Descriptor()
	// outboundrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboundrule.DefaultCreatedAt = outboundruleDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescEnabled is the schema descriptor for enabled field.
	tenantDescEnabled := tenantFields[4].Descriptor()
	// tenant.DefaultEnabled holds the default value on creation for the enabled field.
	tenant.DefaultEnabled = tenantDescEnabled.Default.(bool)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[6].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[7].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	trunkFields := schema.Trunk{}.Fields()
	_ = trunkFields
	// trunkDescPriority is the schema descriptor for priority field.
	trunkDescPriority := trunkFields[4].Descriptor()
	// trunk.DefaultPriority holds the default value on creation for the priority field.
	trunk.DefaultPriority = trunkDescPriority.Default.(int)
	// trunkDescEnabled is the schema descriptor for enabled field.
	trunkDescEnabled := trunkFields[6].Descriptor()
	// trunk.DefaultEnabled holds the default value on creation for the enabled field.
	trunk.DefaultEnabled = trunkDescEnabled.Default.(bool)
	// trunkDescIsDefault is the schema descriptor for is_default field.
	trunkDescIsDefault := trunkFields[7].Descriptor()
	// trunk.DefaultIsDefault holds the default value on creation for the is_default field.
	trunk.DefaultIsDefault = trunkDescIsDefault.Default.(bool)
	// trunkDescCreatedAt is the schema descriptor for created_at field.
	trunkDescCreatedAt := trunkFields[8].Descriptor()
	// trunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	trunk.DefaultCreatedAt = trunkDescCreatedAt.Default.(func() time.Time)
	voiceagentFields := schema.VoiceAgent{}.Fields()
	_ = voiceagentFields
	// voiceagentDescEnabled is the schema descriptor for enabled field.
	voiceagentDescEnabled := voiceagentFields[7].Descriptor()
	// voiceagent.DefaultEnabled holds the default value on creation for the enabled field.
	voiceagent.DefaultEnabled = voiceagentDescEnabled.Default.(bool)
	// voiceagentDescCreatedAt is the schema descriptor for created_at field.
	voiceagentDescCreatedAt := voiceagentFields[9].Descriptor()
	// voiceagent.DefaultCreatedAt holds the default value on creation for the created_at field.
	voiceagent.DefaultCreatedAt = voiceagentDescCreatedAt.Default.(func() time.Time)
	// voiceagentDescUpdatedAt is the schema descriptor for updated_at field.
	voiceagentDescUpdatedAt := voiceagentFields[10].Descriptor()
	// voiceagent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	voiceagent.DefaultUpdatedAt = voiceagentDescUpdatedAt.Default.(func() time.Time)
	// voiceagent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	voiceagent.UpdateDefaultUpdatedAt = voiceagentDescUpdatedAt.UpdateDefault.(func() time.Time)
}
