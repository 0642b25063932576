package path

import (
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"testing"
)

func TestSlash(t *testing.T) {
	t.Run("keeps forward-slash paths unchanged", func(t *testing.T) {
		assert.Equal(t, "SOURCE/sub/a.cpp", Slash("SOURCE/sub/a.cpp"))
	})

	t.Run("normalizes joined paths to forward slashes", func(t *testing.T) {
		joined := filepath.Join("SUBMODULES", "X", "SOURCE")
		assert.Equal(t, "SUBMODULES/X/SOURCE", Slash(joined))
	})
}
