package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblestudio/bible-studio-api/internal/database"
	"github.com/biblestudio/bible-studio-api/internal/testutil"
)

func setupVersionTestRouter(t *testing.T) (*gin.Engine, *database.DB) {
	db, repo := testutil.SetupTestDB(t)
	cached := database.NewCachedRepository(repo)

	router := testutil.SetupTestGin()
	handler := NewVersionHandler(cached)
	router.GET("/versions", handler.ListVersions)
	router.POST("/versions", handler.AddVersion)
	router.GET("/versions/display-names", handler.ListDisplayNames)
	router.DELETE("/versions/:id", handler.DeleteVersion)
	router.PUT("/versions/:id/name", handler.RenameVersion)
	router.GET("/versions/:id/stats", handler.VersionStats)
	router.GET("/versions/:id/display-name", handler.GetDisplayName)
	router.PUT("/versions/:id/display-name", handler.SetDisplayName)
	router.DELETE("/versions/:id/display-name", handler.RemoveDisplayName)
	router.GET("/database/info", handler.DatabaseInfo)

	return router, db
}

func doJSON(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddVersionHandler(t *testing.T) {
	router, _ := setupVersionTestRouter(t)

	w := doJSON(router, http.MethodPost, "/versions", map[string]any{
		"id": "my-translation",
		"verses": []map[string]any{
			{"book_name": "창세기", "book_code": 1, "chapter": 1, "verse": 1, "text": "태초에"},
			{"book_name": "창세기", "book_code": 1, "chapter": 1, "verse": 2, "text": "땅이"},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodGet, "/versions")
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []database.VersionInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "my-translation", response.Data[0].ID)
	assert.Equal(t, 2, response.Data[0].VerseCount)
	// No override and no built-in default: raw id serves as the label.
	assert.Equal(t, "my-translation", response.Data[0].DisplayName)
}

func TestAddVersionHandlerRejectsMalformedBatch(t *testing.T) {
	router, _ := setupVersionTestRouter(t)

	w := doJSON(router, http.MethodPost, "/versions", map[string]any{
		"id": "broken",
		"verses": []map[string]any{
			{"book_name": "창세기", "book_code": 1, "chapter": 1, "verse": 1, "text": "태초에"},
			{"book_name": "", "book_code": 1, "chapter": 1, "verse": 2, "text": "땅이"},
		},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response struct {
		Data []database.VersionInfo `json:"data"`
	}
	w = doRequest(router, http.MethodGet, "/versions")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Data, "nothing may be written on a failed import")
}

func TestDeleteVersionHandler(t *testing.T) {
	router, db := setupVersionTestRouter(t)
	testutil.SeedVerses(t, db, []database.Verse{
		{BookName: "창세기", BookCode: 1, Chapter: 1, Number: 1, Text: "태초에", Version: "doomed"},
	})

	w := doRequest(router, http.MethodDelete, "/versions/doomed")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/versions/doomed")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenameVersionHandler(t *testing.T) {
	router, db := setupVersionTestRouter(t)
	testutil.SeedVerses(t, db, []database.Verse{
		{BookName: "창세기", BookCode: 1, Chapter: 1, Number: 1, Text: "태초에", Version: "old-id"},
	})

	w := doJSON(router, http.MethodPut, "/versions/old-id/name", map[string]string{"new_id": "new-id"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/versions/old-id/name", map[string]string{"new_id": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/versions/new-id/name", map[string]string{"new_id": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVersionStatsHandler(t *testing.T) {
	router, db := setupVersionTestRouter(t)
	testutil.SeedVerses(t, db, []database.Verse{
		{BookName: "창세기", BookCode: 1, Chapter: 1, Number: 1, Text: "태초에", Version: "v"},
		{BookName: "창세기", BookCode: 1, Chapter: 2, Number: 1, Text: "천지와", Version: "v"},
	})

	w := doRequest(router, http.MethodGet, "/versions/v/stats")
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []database.VersionBookStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, 2, response.Data[0].VerseCount)

	w = doRequest(router, http.MethodGet, "/versions/missing/stats")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDisplayNameHandlers(t *testing.T) {
	router, _ := setupVersionTestRouter(t)

	// Built-in default with no override stored.
	w := doRequest(router, http.MethodGet, "/versions/korean-contemporary/display-name")
	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "현대인의성경", response.Data["display_name"])

	w = doJSON(router, http.MethodPut, "/versions/korean-contemporary/display-name",
		map[string]string{"display_name": "현대인"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/versions/korean-contemporary/display-name")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "현대인", response.Data["display_name"])

	var listResponse struct {
		Data []database.VersionDisplayName `json:"data"`
	}
	w = doRequest(router, http.MethodGet, "/versions/display-names")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResponse))
	assert.Len(t, listResponse.Data, 1)

	w = doRequest(router, http.MethodDelete, "/versions/korean-contemporary/display-name")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/versions/korean-contemporary/display-name")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "현대인의성경", response.Data["display_name"])
}

func TestDatabaseInfoHandler(t *testing.T) {
	router, db := setupVersionTestRouter(t)
	testutil.SeedVerses(t, db, []database.Verse{
		{BookName: "창세기", BookCode: 1, Chapter: 1, Number: 1, Text: "태초에", Version: "a"},
		{BookName: "마태복음", BookCode: 40, Chapter: 1, Number: 1, Text: "계보라", Version: "b"},
	})

	w := doRequest(router, http.MethodGet, "/database/info")
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data database.DatabaseInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Data.TotalVerses)
	assert.Equal(t, 2, response.Data.VersionCount)
	assert.Equal(t, 2, response.Data.BookCount)
}
