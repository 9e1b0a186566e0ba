package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	u := User{
		ID:           "u1",
		Email:        "a@x.com",
		Name:         "Asha",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "argon2id")
	assert.NotContains(t, string(raw), "password")
	assert.JSONEq(t, `{"id":"u1","email":"a@x.com","name":"Asha","created_at":"2026-01-01T00:00:00Z","profile_completed":false}`, string(raw))
}
