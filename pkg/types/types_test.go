package types_test

import (
	"testing"

	// Packages
	types "github.com/sysnetvision/go-clima/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_identifier_001(t *testing.T) {
	assert := assert.New(t)

	assert.True(types.IsIdentifier("current_weather"))
	assert.True(types.IsIdentifier("_hidden"))
	assert.True(types.IsIdentifier("get_weather2"))
}

func Test_identifier_002(t *testing.T) {
	assert := assert.New(t)

	assert.False(types.IsIdentifier(""))
	assert.False(types.IsIdentifier("2fast"))
	assert.False(types.IsIdentifier("with space"))
	assert.False(types.IsIdentifier("with-dash"))
}

func Test_ptr_001(t *testing.T) {
	assert := assert.New(t)

	v := types.Ptr("hello")
	assert.NotNil(v)
	assert.Equal("hello", *v)
}
