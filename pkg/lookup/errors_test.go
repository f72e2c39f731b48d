package lookup

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnspecies/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableError(t *testing.T) {
	cause := errors.New("yaml: line 1: did not find expected key")
	err := TableError(cause)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.LookupTableError, gnErr.Code)
	assert.Empty(t, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, cause)
	assert.Contains(t, gnErr.Err.Error(), "from ")
	assert.Contains(t, gnErr.Err.Error(), "cannot decode keyword table")
}
