package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerExposesCounters(t *testing.T) {
	CommandHandled("ADD_TASK", true)
	ConflictDetected()
	SegmentsCreated(3)
	StatusTransition("completed", CauseFinalize)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`scheduler_commands_total{intent="ADD_TASK",success="true"}`,
		"scheduler_conflicts_total",
		"scheduler_segments_created_total",
		`scheduler_status_transitions_total{cause="finalize",status="completed"}`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
