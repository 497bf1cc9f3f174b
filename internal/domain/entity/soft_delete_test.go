package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

func TestFoldName_TrimYCaja(t *testing.T) {
	assert.Equal(t, entity.FoldName("Snacks"), entity.FoldName("snacks "),
		"'Snacks' y 'snacks ' son el mismo nombre para unicidad")
	assert.Equal(t, entity.FoldName("CAFÉ"), entity.FoldName("café"),
		"el fold es Unicode, no solo ASCII")
	assert.NotEqual(t, entity.FoldName("Té verde"), entity.FoldName("Té negro"))
}

func TestNormalizeName_SoloTrim(t *testing.T) {
	assert.Equal(t, "Snacks", entity.NormalizeName("  Snacks  "))
	assert.Equal(t, "SNACKS", entity.NormalizeName("SNACKS"),
		"la caja original se conserva al persistir")
}

func TestSoftDelete_Matches(t *testing.T) {
	now := time.Now()
	live := entity.SoftDelete{}
	deleted := entity.SoftDelete{DeletedAt: &now}

	assert.True(t, live.Matches(entity.VisibilityLive))
	assert.False(t, live.Matches(entity.VisibilityDeleted))
	assert.True(t, live.Matches(entity.VisibilityAll))

	assert.False(t, deleted.Matches(entity.VisibilityLive))
	assert.True(t, deleted.Matches(entity.VisibilityDeleted))
	assert.True(t, deleted.Matches(entity.VisibilityAll))

	assert.False(t, live.IsDeleted())
	assert.True(t, deleted.IsDeleted())
}
