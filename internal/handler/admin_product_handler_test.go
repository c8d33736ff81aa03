package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindProductRequest(t *testing.T, body string) ProductRequest {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var pr ProductRequest
	require.NoError(t, c.Bind(&pr))
	return pr
}

func TestUpsertRoutesToInsertWithoutID(t *testing.T) {
	pr := bindProductRequest(t, `{"name":"Oxford Shirt","sku":"OXF-001","price":89.99,"sizes":["M","L"]}`)

	assert.False(t, pr.isUpdate())
	assert.Zero(t, pr.ID)
}

func TestUpsertRoutesToUpdateWithID(t *testing.T) {
	pr := bindProductRequest(t, `{"id":7,"name":"Oxford Shirt","sku":"OXF-001","price":94.99}`)

	assert.True(t, pr.isUpdate())
	assert.Equal(t, uint(7), pr.ID)
}
