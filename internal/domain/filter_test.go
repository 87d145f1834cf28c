package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileGroupFilters_StringEquals(t *testing.T) {
	match, err := CompileGroupFilters([]SearchFilter{
		{Operator: OpStringEquals, Name: "GROUP_NAME", Value: "analysts"},
	})
	require.NoError(t, err)

	assert.True(t, match(NewGroup("us-east-1", "analysts", "", "1", "default")))
	assert.False(t, match(NewGroup("us-east-1", "analysts2", "", "1", "default")))
}

func TestCompileGroupFilters_StartsWith(t *testing.T) {
	match, err := CompileGroupFilters([]SearchFilter{
		{Operator: OpStartsWith, Name: "GROUP_DESCRIPTION", Value: "eu "},
	})
	require.NoError(t, err)

	assert.True(t, match(NewGroup("us-east-1", "g", "eu analysts", "1", "default")))
	assert.False(t, match(NewGroup("us-east-1", "g", "us analysts", "1", "default")))
}

func TestCompileGroupFilters_Conjunction(t *testing.T) {
	match, err := CompileGroupFilters([]SearchFilter{
		{Operator: OpStartsWith, Name: "GROUP_NAME", Value: "team-"},
		{Operator: OpStringEquals, Name: "GROUP_DESCRIPTION", Value: "active"},
	})
	require.NoError(t, err)

	assert.True(t, match(NewGroup("us-east-1", "team-a", "active", "1", "default")))
	assert.False(t, match(NewGroup("us-east-1", "team-a", "retired", "1", "default")))
	assert.False(t, match(NewGroup("us-east-1", "other", "active", "1", "default")))
}

func TestCompileGroupFilters_UnknownAttribute(t *testing.T) {
	_, err := CompileGroupFilters([]SearchFilter{
		{Operator: OpStringEquals, Name: "GROUP_OWNER", Value: "x"},
	})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t,
		"1 validation error detected: Value 'GROUP_OWNER' at 'filters' failed to satisfy constraint: Member must satisfy enum value set: [GROUP_NAME, GROUP_DESCRIPTION]",
		err.Error())
}

func TestCompileGroupFilters_UnknownOperator(t *testing.T) {
	_, err := CompileGroupFilters([]SearchFilter{
		{Operator: "Contains", Name: "GROUP_NAME", Value: "x"},
	})
	require.Error(t, err)
	assert.Equal(t,
		"1 validation error detected: Value 'Contains' at 'filters' failed to satisfy constraint: Member must satisfy enum value set: [StringEquals, StartsWith]",
		err.Error())
}

func TestCompileGroupFilters_EmptyMatchesEverything(t *testing.T) {
	match, err := CompileGroupFilters(nil)
	require.NoError(t, err)
	assert.True(t, match(NewGroup("us-east-1", "anything", "", "1", "default")))
}
