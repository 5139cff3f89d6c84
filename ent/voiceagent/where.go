// Code generated by ent, DO NOT EDIT.

package voiceagent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voxroute/voxroute/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldProvider, v))
}

// ServiceValue applies equality check predicate on the "service_value" field. It's identical to ServiceValueEQ.
func ServiceValue(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldServiceValue, v))
}

// UsernameCipher applies equality check predicate on the "username_cipher" field. It's identical to UsernameCipherEQ.
func UsernameCipher(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldUsernameCipher, v))
}

// PasswordCipher applies equality check predicate on the "password_cipher" field. It's identical to PasswordCipherEQ.
func PasswordCipher(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldPasswordCipher, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContainsFold(FieldName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContainsFold(FieldProvider, v))
}

// ServiceValueEQ applies the EQ predicate on the "service_value" field.
func ServiceValueEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldServiceValue, v))
}

// ServiceValueNEQ applies the NEQ predicate on the "service_value" field.
func ServiceValueNEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldServiceValue, v))
}

// ServiceValueIn applies the In predicate on the "service_value" field.
func ServiceValueIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldServiceValue, vs...))
}

// ServiceValueNotIn applies the NotIn predicate on the "service_value" field.
func ServiceValueNotIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldServiceValue, vs...))
}

// ServiceValueGT applies the GT predicate on the "service_value" field.
func ServiceValueGT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldServiceValue, v))
}

// ServiceValueGTE applies the GTE predicate on the "service_value" field.
func ServiceValueGTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldServiceValue, v))
}

// ServiceValueLT applies the LT predicate on the "service_value" field.
func ServiceValueLT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldServiceValue, v))
}

// ServiceValueLTE applies the LTE predicate on the "service_value" field.
func ServiceValueLTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldServiceValue, v))
}

// ServiceValueContains applies the Contains predicate on the "service_value" field.
func ServiceValueContains(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContains(FieldServiceValue, v))
}

// ServiceValueHasPrefix applies the HasPrefix predicate on the "service_value" field.
func ServiceValueHasPrefix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasPrefix(FieldServiceValue, v))
}

// ServiceValueHasSuffix applies the HasSuffix predicate on the "service_value" field.
func ServiceValueHasSuffix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasSuffix(FieldServiceValue, v))
}

// ServiceValueEqualFold applies the EqualFold predicate on the "service_value" field.
func ServiceValueEqualFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEqualFold(FieldServiceValue, v))
}

// ServiceValueContainsFold applies the ContainsFold predicate on the "service_value" field.
func ServiceValueContainsFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContainsFold(FieldServiceValue, v))
}

// UsernameCipherEQ applies the EQ predicate on the "username_cipher" field.
func UsernameCipherEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldUsernameCipher, v))
}

// UsernameCipherNEQ applies the NEQ predicate on the "username_cipher" field.
func UsernameCipherNEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldUsernameCipher, v))
}

// UsernameCipherIn applies the In predicate on the "username_cipher" field.
func UsernameCipherIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldUsernameCipher, vs...))
}

// UsernameCipherNotIn applies the NotIn predicate on the "username_cipher" field.
func UsernameCipherNotIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldUsernameCipher, vs...))
}

// UsernameCipherGT applies the GT predicate on the "username_cipher" field.
func UsernameCipherGT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldUsernameCipher, v))
}

// UsernameCipherGTE applies the GTE predicate on the "username_cipher" field.
func UsernameCipherGTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldUsernameCipher, v))
}

// UsernameCipherLT applies the LT predicate on the "username_cipher" field.
func UsernameCipherLT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldUsernameCipher, v))
}

// UsernameCipherLTE applies the LTE predicate on the "username_cipher" field.
func UsernameCipherLTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldUsernameCipher, v))
}

// UsernameCipherContains applies the Contains predicate on the "username_cipher" field.
func UsernameCipherContains(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContains(FieldUsernameCipher, v))
}

// UsernameCipherHasPrefix applies the HasPrefix predicate on the "username_cipher" field.
func UsernameCipherHasPrefix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasPrefix(FieldUsernameCipher, v))
}

// UsernameCipherHasSuffix applies the HasSuffix predicate on the "username_cipher" field.
func UsernameCipherHasSuffix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasSuffix(FieldUsernameCipher, v))
}

// UsernameCipherIsNil applies the IsNil predicate on the "username_cipher" field.
func UsernameCipherIsNil() predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIsNull(FieldUsernameCipher))
}

// UsernameCipherNotNil applies the NotNil predicate on the "username_cipher" field.
func UsernameCipherNotNil() predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotNull(FieldUsernameCipher))
}

// UsernameCipherEqualFold applies the EqualFold predicate on the "username_cipher" field.
func UsernameCipherEqualFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEqualFold(FieldUsernameCipher, v))
}

// UsernameCipherContainsFold applies the ContainsFold predicate on the "username_cipher" field.
func UsernameCipherContainsFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContainsFold(FieldUsernameCipher, v))
}

// PasswordCipherEQ applies the EQ predicate on the "password_cipher" field.
func PasswordCipherEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldPasswordCipher, v))
}

// PasswordCipherNEQ applies the NEQ predicate on the "password_cipher" field.
func PasswordCipherNEQ(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldPasswordCipher, v))
}

// PasswordCipherIn applies the In predicate on the "password_cipher" field.
func PasswordCipherIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldPasswordCipher, vs...))
}

// PasswordCipherNotIn applies the NotIn predicate on the "password_cipher" field.
func PasswordCipherNotIn(vs ...string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldPasswordCipher, vs...))
}

// PasswordCipherGT applies the GT predicate on the "password_cipher" field.
func PasswordCipherGT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldPasswordCipher, v))
}

// PasswordCipherGTE applies the GTE predicate on the "password_cipher" field.
func PasswordCipherGTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldPasswordCipher, v))
}

// PasswordCipherLT applies the LT predicate on the "password_cipher" field.
func PasswordCipherLT(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldPasswordCipher, v))
}

// PasswordCipherLTE applies the LTE predicate on the "password_cipher" field.
func PasswordCipherLTE(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldPasswordCipher, v))
}

// PasswordCipherContains applies the Contains predicate on the "password_cipher" field.
func PasswordCipherContains(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContains(FieldPasswordCipher, v))
}

// PasswordCipherHasPrefix applies the HasPrefix predicate on the "password_cipher" field.
func PasswordCipherHasPrefix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasPrefix(FieldPasswordCipher, v))
}

// PasswordCipherHasSuffix applies the HasSuffix predicate on the "password_cipher" field.
func PasswordCipherHasSuffix(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldHasSuffix(FieldPasswordCipher, v))
}

// PasswordCipherIsNil applies the IsNil predicate on the "password_cipher" field.
func PasswordCipherIsNil() predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIsNull(FieldPasswordCipher))
}

// PasswordCipherNotNil applies the NotNil predicate on the "password_cipher" field.
func PasswordCipherNotNil() predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotNull(FieldPasswordCipher))
}

// PasswordCipherEqualFold applies the EqualFold predicate on the "password_cipher" field.
func PasswordCipherEqualFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEqualFold(FieldPasswordCipher, v))
}

// PasswordCipherContainsFold applies the ContainsFold predicate on the "password_cipher" field.
func PasswordCipherContainsFold(v string) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldContainsFold(FieldPasswordCipher, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldEnabled, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.VoiceAgent {
	return predicate.VoiceAgent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.VoiceAgent {
	return predicate.VoiceAgent(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMemberships applies the HasEdge predicate on the "memberships" edge.
func HasMemberships() predicate.VoiceAgent {
	return predicate.VoiceAgent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembershipsTable, MembershipsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipsWith applies the HasEdge predicate on the "memberships" edge with a given conditions (other predicates).
func HasMembershipsWith(preds ...predicate.GroupMember) predicate.VoiceAgent {
	return predicate.VoiceAgent(func(s *sql.Selector) {
		step := newMembershipsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VoiceAgent) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VoiceAgent) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VoiceAgent) predicate.VoiceAgent {
	return predicate.VoiceAgent(sql.NotPredicates(p))
}
