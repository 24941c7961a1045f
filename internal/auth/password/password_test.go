package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("motdepasse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.True(t, Verify("motdepasse", hash))
	assert.False(t, Verify("autre", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("motdepasse")
	require.NoError(t, err)
	second, err := Hash("motdepasse")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	assert.False(t, Verify("motdepasse", ""))
	assert.False(t, Verify("motdepasse", "plaintext"))
	assert.False(t, Verify("motdepasse", "$bcrypt$v=19$m=1,t=1,p=1$abc$def"))
}
