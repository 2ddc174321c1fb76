package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"smart-task-scheduler/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	east := time.FixedZone("UTC+7", 7*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "utc", in: time.Date(2025, 11, 10, 15, 30, 0, 0, time.UTC), want: `"2025-11-10"`},
		{name: "keeps its own zone", in: time.Date(2025, 11, 10, 0, 0, 0, 0, east), want: `"2025-11-10"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Date marshaled to %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateInStruct(t *testing.T) {
	v := struct {
		Day response.Date `json:"day"`
	}{Day: response.Date(time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC))}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `{"day":"2025-11-03"}`; string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}
