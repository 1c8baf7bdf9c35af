package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortAndFull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
	assert.True(t, strings.HasPrefix(Full(), "version: "+Version+","))
	assert.Contains(t, Full(), "commit: "+Commit)
	assert.Contains(t, Full(), "built at: "+BuildTime)
	assert.NotContains(t, Version, " ")
}
