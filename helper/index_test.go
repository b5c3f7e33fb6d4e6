package helper

import (
	"camp_registration/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	claim := model.TokenClaim{SessionId: "sid-1", Username: "admin", Role: "admin"}

	signed, err := GenerateAccessToken(secret, claim, time.Hour)
	require.NoError(t, err)

	token, err := ParseToken(secret, signed)
	require.NoError(t, err)
	got, err := ClaimFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, claim, got)
}

func TestParseToken_Rejects(t *testing.T) {
	signed, err := GenerateAccessToken([]byte("a"), model.TokenClaim{SessionId: "s"}, time.Hour)
	require.NoError(t, err)
	_, err = ParseToken([]byte("b"), signed)
	assert.Error(t, err)

	expired, err := GenerateAccessToken([]byte("a"), model.TokenClaim{SessionId: "s"}, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken([]byte("a"), expired)
	assert.Error(t, err)
}

func TestProofPublicID(t *testing.T) {
	tk := model.Ticket{TicketId: "R63T-AB12CD34", FullName: "Ada Obi"}
	assert.Equal(t, "r63t-ab12cd34_ada-obi_bank-receipt", ProofPublicID(tk, "Bank Receipt.PNG"))
	assert.Equal(t, "proof", ProofPublicID(model.Ticket{}, ".png"))
}
