package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"active", "blocked", "pending"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), status)
		assert.True(t, status.IsValid())
	}

	for _, invalid := range []string{"", "archived", "Active", "deleted"} {
		_, err := ParseStatus(invalid)
		assert.Error(t, err, "status %q should be rejected", invalid)
	}
}
