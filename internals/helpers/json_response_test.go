package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(45, 2, 20)

	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 20, pg.PerPage)
	assert.Equal(t, int64(45), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}

func TestBuildPaginationFromPage_SinglePage(t *testing.T) {
	pg := BuildPaginationFromPage(5, 1, 20)

	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestBuildPaginationFromPage_Defaults(t *testing.T) {
	pg := BuildPaginationFromPage(10, 0, 0)

	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 20, pg.PerPage)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
}
