package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/models"
)

func TestGetAPIInfo_WritesJSON(t *testing.T) {
	router, mocks := newTestRouter(t)

	want := models.APIInfo{
		Title:       "Reactive Notes API",
		Version:     "1.2.3",
		Description: "notes",
	}
	mocks.appInfo.EXPECT().GetAPIInfo(gomock.Any()).Return(want)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-info", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.APIInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
