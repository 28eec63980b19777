package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueRequired(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValueRequired("value"))
	assert.EqualError(t, ValueRequired(""), "value is required")
	assert.EqualError(t, ValueRequired(nil), "value is required")
}

func TestIntInRange(t *testing.T) {
	t.Parallel()
	validator := IntInRange(60, 14400)

	assert.NoError(t, validator("60"))
	assert.NoError(t, validator("14400"))
	assert.NoError(t, validator("300"))
	assert.EqualError(t, validator("59"), "value must be between 60 and 14400")
	assert.EqualError(t, validator("14401"), "value must be between 60 and 14400")
	assert.EqualError(t, validator("abc"), `"abc" is not a valid number`)
	assert.EqualError(t, validator(""), `"" is not a valid number`)
}
