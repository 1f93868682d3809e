package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	apperrors "github.com/allisson/campus/internal/errors"

	// Register KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ResolveSigningSecret returns the session signing key. Without a keeper URI the
// configured secret is used as is. With one, the secret is a base64 ciphertext
// decrypted by the keeper (gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://).
func ResolveSigningSecret(ctx context.Context, secret, keeperURI string) ([]byte, error) {
	if secret == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "session secret required")
	}
	if keeperURI == "" {
		return []byte(secret), nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode session secret ciphertext")
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open secrets keeper")
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt session secret")
	}
	if len(plaintext) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "session secret required")
	}

	return plaintext, nil
}
