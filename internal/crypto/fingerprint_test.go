package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"killerpack/internal/crypto"
)

func TestDigest_Stable(t *testing.T) {
	a := crypto.Digest([]byte{0x01, 0x11, 0x02, 0x00, 0x01})
	b := crypto.Digest([]byte{0x01, 0x11, 0x02, 0x00, 0x01})
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, crypto.Digest([]byte{0x00}))
}

func TestFingerprint_IsDigestPrefix(t *testing.T) {
	data := []byte("17 0001")
	assert.Len(t, crypto.Fingerprint(data), 20)
	assert.Equal(t, crypto.Digest(data)[:20], crypto.Fingerprint(data))
}

func TestDigest_EmptyInput(t *testing.T) {
	// BLAKE2b-256 of the empty string.
	assert.Equal(t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		crypto.Digest(nil))
}
