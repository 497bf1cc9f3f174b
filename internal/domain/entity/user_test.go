package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

func TestKnownRole(t *testing.T) {
	assert.True(t, entity.KnownRole(entity.RoleAdmin))
	assert.True(t, entity.KnownRole(entity.RoleCustomer))
	assert.False(t, entity.KnownRole("sommelier"),
		"las etiquetas personalizadas no son roles conocidos")
	assert.False(t, entity.KnownRole("Admin"), "la comparación es exacta")
}

func TestUser_HasPendingReset(t *testing.T) {
	u := entity.User{}
	assert.False(t, u.HasPendingReset())

	token := "abc"
	exp := time.Now().Add(time.Hour)
	u.ResetToken = &token
	u.ResetExpires = &exp
	assert.True(t, u.HasPendingReset())
}
