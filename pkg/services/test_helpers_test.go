package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/ent"
)

// staticEncryptor is a reversible stand-in for the production AES encryptor.
type staticEncryptor struct{}

func (staticEncryptor) Encrypt(plain string) (string, error) { return "enc:" + plain, nil }

func (staticEncryptor) Decrypt(cipher string) (string, error) {
	return strings.TrimPrefix(cipher, "enc:"), nil
}

func createTestTenant(t *testing.T, client *ent.Client) *ent.Tenant {
	t.Helper()
	tenant, err := client.Tenant.Create().
		SetID(uuid.NewString()).
		SetName("Acme Voice").
		SetDomain("acme-" + uuid.NewString() + ".example.com").
		SetAPIKey("key-" + uuid.NewString()).
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func createTestAgent(t *testing.T, client *ent.Client, tenantID, name string) *ent.VoiceAgent {
	t.Helper()
	agent, err := client.VoiceAgent.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetName(name).
		SetProvider("vapi").
		SetServiceValue("assistant-" + name).
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func createTestSession(t *testing.T, client *ent.Client, tenantID, token string) *ent.CallSession {
	t.Helper()
	sess, err := client.CallSession.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetSessionToken(token).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}
