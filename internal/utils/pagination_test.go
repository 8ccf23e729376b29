package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/Ani07-05/brickdash/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/orders?"+query, nil)
	return c
}

func TestGetPaginationParams_Defaults(t *testing.T) {
	params := GetPaginationParams(paginationContext(t, ""))
	require.Equal(t, constants.MinPageSize, params.Page)
	require.Equal(t, constants.DefaultPageSize, params.Limit)
	require.Equal(t, 0, params.Offset)
}

func TestGetPaginationParams_ClampsOutOfRange(t *testing.T) {
	params := GetPaginationParams(paginationContext(t, "page=-2&limit=9999"))
	require.Equal(t, constants.MinPageSize, params.Page)
	require.Equal(t, constants.DefaultPageSize, params.Limit)
}

func TestGetPaginationParams_ComputesOffset(t *testing.T) {
	params := GetPaginationParams(paginationContext(t, "page=3&limit=20"))
	require.Equal(t, 3, params.Page)
	require.Equal(t, 20, params.Limit)
	require.Equal(t, 40, params.Offset)
}
