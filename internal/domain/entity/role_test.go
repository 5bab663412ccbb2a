package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

func TestParseRoles_TrimsAndSkipsEmpty(t *testing.T) {
	set := entity.ParseRoles(" ortsvorsteher , wegewart ,, ")

	assert.Len(t, set, 2)
	assert.True(t, set.Has(entity.RoleOrtsvorsteher))
	assert.True(t, set.Has(entity.RoleWegewart))
	assert.False(t, set.Has(entity.RoleAdmin))
}

func TestParseRoles_EmptyStringIsValidEmptySet(t *testing.T) {
	set := entity.ParseRoles("")

	assert.Empty(t, set)
	assert.False(t, set.HasAny(entity.RoleAdmin, entity.RoleWegewart))
}

func TestParseRoles_KeepsUnknownTags(t *testing.T) {
	set := entity.ParseRoles("wegewart,kassenwart")

	assert.True(t, set.Has("kassenwart"), "unknown tags must survive the round trip")
	assert.Equal(t, "kassenwart,wegewart", set.String())
}

func TestParseRoles_DuplicatesCollapse(t *testing.T) {
	set := entity.ParseRoles("admin,admin,admin")

	assert.Len(t, set, 1)
}

func TestRoleSet_TagsSorted(t *testing.T) {
	set := entity.ParseRoles("wegewart,admin,ortsvorsteher")

	assert.Equal(t, []string{"admin", "ortsvorsteher", "wegewart"}, set.Tags())
}

func TestJoinRoles_DropsEmptyTokens(t *testing.T) {
	assert.Equal(t, "admin,wegewart", entity.JoinRoles([]string{"admin", " ", "", "wegewart"}))
}
