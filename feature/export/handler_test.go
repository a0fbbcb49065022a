package export

import (
	"net/http/httptest"
	"testing"

	"sheetsync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(client *mocks.Client) *fiber.App {
	app := fiber.New()
	svc := NewService(zap.NewNop(), client, "workbook-dumps")
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleListDumps(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "workbook-dumps", mock.Anything).
		Return(dumpObjects(minio.ObjectInfo{Key: "dumps/a.json", Size: 12}))

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/export/dumps?prefix=dumps/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleListDumps_Empty(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "workbook-dumps", mock.Anything).
		Return(dumpObjects())

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/export/dumps", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleRemoveDump(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "workbook-dumps", "dumps/a.json", mock.Anything).
		Return(nil)

	app := newTestApp(client)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/export/dumps?object=dumps/a.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	client.AssertExpectations(t)
}

func TestHandleRemoveDump_MissingObject(t *testing.T) {
	app := newTestApp(new(mocks.Client))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/export/dumps", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
