package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseBytes(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		wantHeader  string
	}{
		{
			name:        "chart json",
			contentType: ContentType.JSON,
			body:        `{"data":[{"date":"2024-01-01","weight":70}]}`,
			status:      http.StatusOK,
			wantHeader:  ContentType.JSON,
		},
		{
			name:        "plain text error",
			contentType: ContentType.Text,
			body:        "invalid chart config",
			status:      http.StatusBadRequest,
			wantHeader:  ContentType.Text,
		},
		{
			name:   "no content type",
			body:   "ok",
			status: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteResponseBytes(rr, tt.contentType, []byte(tt.body), tt.status)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.wantHeader, rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}

func TestWriteTextResponseOK(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteTextResponseOK(rr, "3f2c1ab")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentType.Text, rr.Header().Get("Content-Type"))
	assert.Equal(t, "3f2c1ab", rr.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, map[string]float64{"estimated1RM": 116.7}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"estimated1RM":116.7}`, rr.Body.String())
}

func TestWriteJSON_Unmarshallable(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, map[string]any{"bad": make(chan int)}, http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal error\n", rr.Body.String())
}
