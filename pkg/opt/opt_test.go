package opt_test

import (
	"errors"
	"testing"

	// Packages
	opt "github.com/sysnetvision/go-clima/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func Test_opt_001(t *testing.T) {
	// Empty apply returns an empty option set
	assert := assert.New(t)

	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
	assert.Equal("", opts.GetString("missing"))
}

func Test_opt_002(t *testing.T) {
	// SetString replaces, AddString appends
	assert := assert.New(t)

	opts, err := opt.Apply(opt.SetString("key", "a"), opt.SetString("key", "b"))
	assert.NoError(err)
	assert.Equal("b", opts.GetString("key"))

	opts, err = opt.Apply(opt.AddString("key", "a", "b"))
	assert.NoError(err)
	assert.Equal([]string{"a", "b"}, opts.GetStringArray("key"))
}

func Test_opt_003(t *testing.T) {
	// Numeric values round-trip through string storage
	assert := assert.New(t)

	opts, err := opt.Apply(opt.SetUint("n", 5), opt.SetFloat64("f", 0.7))
	assert.NoError(err)
	assert.Equal(uint(5), opts.GetUint("n"))
	assert.InDelta(0.7, opts.GetFloat64("f"), 1e-9)
}

func Test_opt_004(t *testing.T) {
	// Opaque values are stored and retrieved by reference
	assert := assert.New(t)

	type toolkit struct{ name string }
	tk := &toolkit{name: "test"}

	opts, err := opt.Apply(opt.SetAny(opt.ToolkitKey, tk))
	assert.NoError(err)
	assert.True(opts.Has(opt.ToolkitKey))
	assert.Same(tk, opts.Get(opt.ToolkitKey))
}

func Test_opt_005(t *testing.T) {
	// An error option aborts Apply
	assert := assert.New(t)

	bad := errors.New("bad option")
	opts, err := opt.Apply(opt.SetString("key", "value"), opt.Error(bad))
	assert.ErrorIs(err, bad)
	assert.Nil(opts)
}
