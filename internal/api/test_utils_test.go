package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Pengu1Nus/recipe-api/internal/api"
	"github.com/Pengu1Nus/recipe-api/internal/router"
	"github.com/Pengu1Nus/recipe-api/internal/service"
)

// fakeImageService stands in for S3 in handler tests.
type fakeImageService struct {
	url   string
	err   error
	calls int
}

func (f *fakeImageService) UploadRecipeImage(ctx context.Context, data []byte, filename string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func setupTestRouter(t *testing.T, db *gorm.DB, images service.IImageService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(db, "test-secret", nil)
	recipeService := service.NewRecipeService(db)
	tagService := service.NewTagService(db)
	ingredientService := service.NewIngredientService(db)

	return router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService, images, authService),
		api.NewTagHandler(tagService, authService),
		api.NewIngredientHandler(ingredientService, authService),
	)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func uploadImage(t *testing.T, engine *gin.Engine, path, token string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
