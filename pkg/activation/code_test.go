package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_LengthAndDigits(t *testing.T) {
	gen := NewGenerator(6)

	for i := 0; i < 50; i++ {
		code, err := gen.Code()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit %q", code, r)
		}
	}
}

func TestCode_CustomLength(t *testing.T) {
	gen := NewGenerator(8)

	code, err := gen.Code()
	assert.NoError(t, err)
	assert.Len(t, code, 8)
}

func TestNewGenerator_InvalidLengthFallsBack(t *testing.T) {
	gen := NewGenerator(0)

	code, err := gen.Code()
	assert.NoError(t, err)
	assert.Len(t, code, 6)
}
