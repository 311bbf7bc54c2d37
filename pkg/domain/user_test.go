package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_EffectiveAddsImplicitBaseRole(t *testing.T) {
	assert.Equal(t, []string{RoleUser}, Roles(nil).Effective())
	assert.Equal(t, []string{RoleAdmin, RoleUser}, Roles{RoleAdmin}.Effective())
	assert.Equal(t, []string{RoleUser}, Roles{RoleUser}.Effective(), "base role is not duplicated")
}

func TestRoles_Has(t *testing.T) {
	assert.True(t, Roles(nil).Has(RoleUser))
	assert.False(t, Roles(nil).Has(RoleAdmin))
	assert.True(t, Roles{RoleAdmin}.Has(RoleAdmin))
}

func TestRoles_RoundTripsThroughColumn(t *testing.T) {
	value, err := Roles{RoleAdmin}.Value()
	require.NoError(t, err)

	var scanned Roles
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, Roles{RoleAdmin}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestCollectViolations_FieldNamesFollowJSONTags(t *testing.T) {
	v := NewValidator()
	err := v.Struct(&Booklet{Name: "x", Money: -1})
	violations := CollectViolations(err)
	require.NotEmpty(t, violations)

	byField := map[string]string{}
	for _, violation := range violations {
		byField[violation.Field] = violation.Message
	}
	assert.Equal(t, "must contain at least 2 characters", byField["name"])
	assert.Equal(t, "must be positive or zero", byField["money"])
	assert.Equal(t, "required relationship missing", byField["idBookletPercent"])
	assert.Equal(t, "required relationship missing", byField["idCurrentAccount"])
}
