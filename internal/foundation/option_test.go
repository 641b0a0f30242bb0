package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	some := Some("client")
	none := None[string]()

	assert.True(t, some.IsSome())
	assert.True(t, none.IsNone())
	assert.Equal(t, "client", some.Unwrap())

	v, ok := none.Get()
	assert.False(t, ok)
	assert.Empty(t, v)

	assert.Panics(t, func() { none.Unwrap() })
}
