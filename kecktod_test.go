package kecktod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kecktod/internal/errors"
)

func TestLoad_BadTag(t *testing.T) {
	_, err := Load("junk", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoad_MissingContainer(t *testing.T) {
	// A valid tag pointing at a directory without <tag>_tod.mat fails
	// before any focal-plane file is touched.
	dir := t.TempDir()

	_, err := Load("20150614C06_dk023", dir)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	assert.Contains(t, err.Error(), "time-ordered data container")
}

func TestLoad_DefaultDirectoryIsTagName(t *testing.T) {
	// With no override the loader looks for the container under a
	// directory named after the tag, which does not exist here.
	_, err := Load("20150614C06_dk023", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "20150614C06_dk023/20150614C06_dk023_tod.mat", appErr.Context["path"])
}
