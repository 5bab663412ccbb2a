package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

func TestEntryStatus_Transitions(t *testing.T) {
	cases := []struct {
		name string
		from entity.EntryStatus
		to   entity.EntryStatus
		ok   bool
	}{
		{"submitted to approved", entity.StatusSubmitted, entity.StatusApproved, true},
		{"submitted to billed (central shortcut)", entity.StatusSubmitted, entity.StatusBilled, true},
		{"submitted to rejected", entity.StatusSubmitted, entity.StatusRejected, true},
		{"approved to billed", entity.StatusApproved, entity.StatusBilled, true},
		{"approved to rejected", entity.StatusApproved, entity.StatusRejected, false},
		{"approved to submitted", entity.StatusApproved, entity.StatusSubmitted, false},
		{"billed is absorbing", entity.StatusBilled, entity.StatusApproved, false},
		{"rejected is absorbing", entity.StatusRejected, entity.StatusSubmitted, false},
		{"no self transition", entity.StatusSubmitted, entity.StatusSubmitted, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestEntryStatus_Terminal(t *testing.T) {
	assert.False(t, entity.StatusSubmitted.Terminal())
	assert.True(t, entity.StatusApproved.Terminal())
	assert.True(t, entity.StatusBilled.Terminal())
	assert.True(t, entity.StatusRejected.Terminal())
}

func TestEntryStatus_Valid(t *testing.T) {
	assert.True(t, entity.StatusApproved.Valid())
	assert.False(t, entity.EntryStatus("archived").Valid())
	assert.False(t, entity.EntryStatus("").Valid())
}
