package polytri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectExclusionMode(t *testing.T) {
	assert.Equal(t, modeNoConstraints, selectExclusionMode(false, true))
	assert.Equal(t, modeNoConstraints, selectExclusionMode(false, false))
	assert.Equal(t, modeConstrainedExcludeHoles, selectExclusionMode(true, true))
	assert.Equal(t, modeConstrainedKeepHoles, selectExclusionMode(true, false))
}
