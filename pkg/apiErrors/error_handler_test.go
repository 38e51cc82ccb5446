package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		details        any
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Formato inválido",
			code:           ErrInvalidFormat,
			details:        map[string]string{"dateFrom": "deve estar no formato yyyy-mm-dd"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"code":"VAL_003","message":"mensagem","details":{"dateFrom":"deve estar no formato yyyy-mm-dd"}}`,
		},
		{
			name:           "Não encontrado",
			code:           ErrResourceNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"code":"RES_001","message":"mensagem"}`,
		},
		{
			name:           "Conflito",
			code:           ErrResourceAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"code":"RES_002","message":"mensagem"}`,
		},
		{
			name:           "Código desconhecido vira erro interno",
			code:           "XYZ",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"code":"XYZ","message":"mensagem"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", tt.details)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
