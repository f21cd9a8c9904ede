package tod

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kecktod/internal/errors"
)

func TestOpen_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "20150614C06_dk023_tod.mat")

	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.Contains(t, err.Error(), "time-ordered data container")
}
