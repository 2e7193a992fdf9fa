package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/pixforge/internal/adapter/handler"
	"github.com/marcos-nsantos/pixforge/internal/mocks"
	"github.com/marcos-nsantos/pixforge/internal/usecase/cleanup"
)

func TestCleanupHandler_Cleanup(t *testing.T) {
	t.Run("deletes named files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cleanupSvc := mocks.NewMockCleanupService(ctrl)
		h := handler.NewCleanupHandler(cleanupSvc)

		router := setupRouter()
		router.POST("/cleanup", h.Cleanup)

		cleanupSvc.EXPECT().
			Cleanup(gomock.Any(), cleanup.CleanupInput{UploadedFile: "a.png", ResizedFile: "b.png"}).
			Return(&cleanup.CleanupResult{Deleted: 2})

		req := jsonRequest(t, http.MethodPost, "/cleanup", map[string]string{"uploadedFile": "a.png", "resizedFile": "b.png"})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "Cleanup completed successfully", resp["message"])
	})

	t.Run("sweeps without a body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cleanupSvc := mocks.NewMockCleanupService(ctrl)
		h := handler.NewCleanupHandler(cleanupSvc)

		router := setupRouter()
		router.POST("/cleanup", h.Cleanup)

		cleanupSvc.EXPECT().Cleanup(gomock.Any(), cleanup.CleanupInput{}).Return(&cleanup.CleanupResult{Swept: true})

		req := httptest.NewRequest(http.MethodPost, "/cleanup", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ignores a malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cleanupSvc := mocks.NewMockCleanupService(ctrl)
		h := handler.NewCleanupHandler(cleanupSvc)

		router := setupRouter()
		router.POST("/cleanup", h.Cleanup)

		cleanupSvc.EXPECT().Cleanup(gomock.Any(), cleanup.CleanupInput{}).Return(&cleanup.CleanupResult{Swept: true})

		req := httptest.NewRequest(http.MethodPost, "/cleanup", strings.NewReader("garbage"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("succeeds when some deletes failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cleanupSvc := mocks.NewMockCleanupService(ctrl)
		h := handler.NewCleanupHandler(cleanupSvc)

		router := setupRouter()
		router.POST("/cleanup", h.Cleanup)

		cleanupSvc.EXPECT().
			Cleanup(gomock.Any(), cleanup.CleanupInput{UploadedFile: "a.png", ResizedFile: "b.png"}).
			Return(&cleanup.CleanupResult{Deleted: 1, Failed: 1})

		req := jsonRequest(t, http.MethodPost, "/cleanup", map[string]string{"uploadedFile": "a.png", "resizedFile": "b.png"})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})
}
