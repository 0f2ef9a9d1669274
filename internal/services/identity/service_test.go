package identity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cryptalk/internal/services/identity"
	"cryptalk/internal/store"
)

const goodPassphrase = "Horse-Battery-Staple-99!"

func TestGenerateAndLoad(t *testing.T) {
	svc := identity.New(store.NewIdentityFileStore(t.TempDir()))

	id, fp, err := svc.GenerateIdentity(goodPassphrase)
	require.NoError(t, err)
	require.NotEmpty(t, fp)

	got, err := svc.LoadIdentity(goodPassphrase)
	require.NoError(t, err)
	require.Equal(t, id, got)

	fp2, err := svc.FingerprintIdentity(goodPassphrase)
	require.NoError(t, err)
	require.Equal(t, fp, fp2)
}

func TestWeakPassphraseRejected(t *testing.T) {
	svc := identity.New(store.NewIdentityFileStore(t.TempDir()))

	weak := []string{
		"",
		"short1!A",
		"alllowercaseonly!9",
		"ALLUPPERCASEONLY!9",
		"NoSymbolsHere999",
		"NoDigitsHere!!aa",
	}
	for _, p := range weak {
		_, _, err := svc.GenerateIdentity(p)
		require.ErrorIs(t, err, identity.ErrWeakPassphrase, "passphrase %q", p)
	}
}
