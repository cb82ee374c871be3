package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieIssueAndParse(t *testing.T) {
	codec := NewCookieCodec("hr_sid", "secret", time.Hour)

	sid, signed, expiresAt, err := codec.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, sid)
	assert.NotEmpty(t, signed)
	assert.True(t, expiresAt.After(time.Now()))

	parsed, err := codec.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, sid, parsed)
}

func TestCookieEachIssueIsUnique(t *testing.T) {
	codec := NewCookieCodec("hr_sid", "secret", time.Hour)

	first, _, _, err := codec.Issue()
	require.NoError(t, err)
	second, _, _, err := codec.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCookieRejectsGarbage(t *testing.T) {
	codec := NewCookieCodec("hr_sid", "secret", time.Hour)

	_, err := codec.Parse("not-a-token")
	assert.Error(t, err)
}

func TestCookieRejectsWrongSecret(t *testing.T) {
	issuer := NewCookieCodec("hr_sid", "secret-a", time.Hour)
	verifier := NewCookieCodec("hr_sid", "secret-b", time.Hour)

	_, signed, _, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.Error(t, err)
}

func TestCookieRejectsExpired(t *testing.T) {
	codec := NewCookieCodec("hr_sid", "secret", time.Millisecond)

	_, signed, _, err := codec.Issue()
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = codec.Parse(signed)
	assert.Error(t, err)
}
