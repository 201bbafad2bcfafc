package deviceid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRealDevice(t *testing.T) {
	assert.Equal(t, !IsSimulator(), IsRealDevice())
	assert.Equal(t, simulator, IsSimulator())
}
