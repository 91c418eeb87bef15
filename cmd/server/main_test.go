package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestPleiotropyEndpoint_InvalidRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint
	router.POST("/api/pleiotropy", func(c *gin.Context) {
		var req struct {
			Trait         string  `json:"trait" binding:"required"`
			PvalThreshold float64 `json:"pval_threshold"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"trait": req.Trait})
	})

	// Missing trait
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/pleiotropy", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMREndpoint_MissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/api/mr", func(c *gin.Context) {
		if c.Query("exposure_trait") == "" && c.Query("outcome_trait") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "exposure_trait or outcome_trait is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": []string{}})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/mr", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/mr?outcome_trait=Coronary+heart+disease", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueryFloat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var got float64
	router.GET("/t", func(c *gin.Context) {
		got = queryFloat(c, "pval_threshold", 1e-5)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/t?pval_threshold=1e-8", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 1e-8, got)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/t", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 1e-5, got)
}
