package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

func actorWith(ortsteil, roles string) domain.Actor {
	return domain.Actor{ID: "u1", Ortsteil: ortsteil, Roles: entity.ParseRoles(roles)}
}

func TestActor_Scope_HighestPrivilegeWins(t *testing.T) {
	cases := []struct {
		roles string
		want  domain.ScopeLevel
	}{
		{"wegewart", domain.ScopeOwn},
		{"", domain.ScopeOwn},
		{"ortsvorsteher", domain.ScopeDistrict},
		{"ortsvorsteher,wegewart", domain.ScopeDistrict},
		{"verwaltung", domain.ScopeAll},
		{"admin", domain.ScopeAll},
		{"wegewart,ortsvorsteher,admin", domain.ScopeAll},
	}
	for _, tc := range cases {
		t.Run(tc.roles, func(t *testing.T) {
			assert.Equal(t, tc.want, actorWith("Nord", tc.roles).Scope())
		})
	}
}

func TestActor_CanReview(t *testing.T) {
	supervisor := actorWith("Nord", "ortsvorsteher")
	assert.True(t, supervisor.CanReview("Nord"))
	assert.False(t, supervisor.CanReview("Sued"), "supervisors review their own district only")

	admin := actorWith("Nord", "admin")
	assert.True(t, admin.CanReview("Sued"))

	worker := actorWith("Nord", "wegewart")
	assert.False(t, worker.CanReview("Nord"))
}

func TestActor_IsReviewer(t *testing.T) {
	assert.True(t, actorWith("Nord", "ortsvorsteher").IsReviewer())
	assert.True(t, actorWith("", "verwaltung").IsReviewer())
	assert.False(t, actorWith("Nord", "wegewart").IsReviewer())
}
