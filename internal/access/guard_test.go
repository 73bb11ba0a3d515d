package access

import (
	"testing"

	"github.com/UkralStul/blog-posts-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwns(t *testing.T) {
	tests := []struct {
		name   string
		acting string
		owner  string
		want   bool
	}{
		{"equal", "u1", "u1", true},
		{"trimmed owner", "u1", " u1\n", true},
		{"trimmed acting", "\tu1 ", "u1", true},
		{"different", "u2", "u1", false},
		{"empty acting", "", "", false},
		{"blank acting", "  ", " ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Owns(tt.acting, tt.owner))
		})
	}
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize("u1", "u1 ", "nope"))

	err := Authorize("u2", "u1", "nope")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
	assert.Equal(t, "nope", err.Error())
}

func TestRequireIdentity(t *testing.T) {
	id, err := RequireIdentity(" u1 ")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = RequireIdentity("   ")
	assert.True(t, domain.IsKind(err, domain.KindForbidden))
}
