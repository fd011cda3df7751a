package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblestudio/bible-studio-api/internal/testutil"
)

func TestHealthHandler(t *testing.T) {
	db, _ := testutil.SetupTestDB(t)

	router := testutil.SetupTestGin()
	router.GET("/health", HealthHandler(db))

	w := doRequest(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
}
