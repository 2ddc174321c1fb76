package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		write       func(c *gin.Context)
		wantStatus  int
		wantCode    int
		wantMessage string
		wantData    bool
	}{
		{
			name:        "ok",
			write:       func(c *gin.Context) { response.OK(c, gin.H{"intent": "ADD_TASK"}) },
			wantStatus:  http.StatusOK,
			wantCode:    0,
			wantMessage: response.MessageSuccess,
			wantData:    true,
		},
		{
			name: "conflict with payload",
			write: func(c *gin.Context) {
				response.ErrorWithStatus(c, http.StatusConflict, errors.New("an event already occupies this exact time"), gin.H{"conflicts": []string{"evt-1"}})
			},
			wantStatus:  http.StatusConflict,
			wantCode:    http.StatusConflict,
			wantMessage: "an event already occupies this exact time",
			wantData:    true,
		},
		{
			name: "not found without payload",
			write: func(c *gin.Context) {
				response.ErrorWithStatus(c, http.StatusNotFound, errors.New("event not found"), nil)
			},
			wantStatus:  http.StatusNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "event not found",
		},
		{
			name:        "internal error hides cause",
			write:       func(c *gin.Context) { response.InternalError(c, errors.New("database is locked")) },
			wantStatus:  http.StatusInternalServerError,
			wantCode:    response.InternalServerErrorCode,
			wantMessage: response.DefaultErrorMessage,
		},
		{
			name:        "unauthorized",
			write:       response.Unauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    401,
			wantMessage: "Unauthorized",
		},
		{
			name:        "too many requests",
			write:       response.TooManyRequests,
			wantStatus:  http.StatusTooManyRequests,
			wantCode:    http.StatusTooManyRequests,
			wantMessage: "Too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if resp.ErrorCode != tt.wantCode {
				t.Errorf("error_code = %d, want %d", resp.ErrorCode, tt.wantCode)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
			if (resp.Data != nil) != tt.wantData {
				t.Errorf("data = %v, want present %v", resp.Data, tt.wantData)
			}
		})
	}
}
