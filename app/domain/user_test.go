package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Public(t *testing.T) {
	id := uuid.MustParse("3f1d9a2e-5b7c-4f10-9a63-8e21d4c0b5aa")
	created := time.Date(2025, 6, 1, 10, 30, 0, 0, time.FixedZone("JST", 9*3600))

	user := &User{
		ID:           id,
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    created,
	}

	public := user.Public()

	assert.Equal(t, id.String(), public.ID)
	assert.Equal(t, "Ada Lovelace", public.Name)
	assert.Equal(t, "ada@example.com", public.Email)
	assert.Equal(t, "2025-06-01T01:30:00Z", public.CreatedAt)
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now(),
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), user.PasswordHash)
	assert.NotContains(t, string(raw), "password")
}

func TestPublicUser_JSONShape(t *testing.T) {
	public := &PublicUser{
		ID:        "3f1d9a2e-5b7c-4f10-9a63-8e21d4c0b5aa",
		Name:      "Ada",
		Email:     "ada@example.com",
		CreatedAt: "2025-06-01T01:30:00Z",
	}

	raw, err := json.Marshal(public)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded, 4)
	for _, key := range []string{"id", "name", "email", "createdAt"} {
		assert.Contains(t, decoded, key)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "ada@example.com", want: "ada@example.com"},
		{name: "mixed case", input: "Ada@Example.COM", want: "ada@example.com"},
		{name: "surrounding whitespace", input: "  ada@example.com\n", want: "ada@example.com"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}
