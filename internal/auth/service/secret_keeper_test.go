package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets/localsecrets"
)

func TestResolveSigningSecret_Plain(t *testing.T) {
	secret, err := ResolveSigningSecret(context.Background(), "dev_secret", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("dev_secret"), secret)
}

func TestResolveSigningSecret_Empty(t *testing.T) {
	_, err := ResolveSigningSecret(context.Background(), "", "")
	assert.Error(t, err)
}

func TestResolveSigningSecret_Keeper(t *testing.T) {
	ctx := context.Background()

	key, err := localsecrets.NewRandomKey()
	require.NoError(t, err)
	keeper := localsecrets.NewKeeper(key)
	defer func() { _ = keeper.Close() }()

	ciphertext, err := keeper.Encrypt(ctx, []byte("production-signing-key"))
	require.NoError(t, err)

	uri := "base64key://" + base64.URLEncoding.EncodeToString(key[:])
	secret, err := ResolveSigningSecret(ctx, base64.StdEncoding.EncodeToString(ciphertext), uri)
	require.NoError(t, err)
	assert.Equal(t, []byte("production-signing-key"), secret)
}

func TestResolveSigningSecret_BadCiphertext(t *testing.T) {
	key, err := localsecrets.NewRandomKey()
	require.NoError(t, err)
	uri := "base64key://" + base64.URLEncoding.EncodeToString(key[:])

	_, err = ResolveSigningSecret(context.Background(), "%%%", uri)
	assert.Error(t, err)

	_, err = ResolveSigningSecret(context.Background(), base64.StdEncoding.EncodeToString([]byte("junk")), uri)
	assert.Error(t, err)
}
