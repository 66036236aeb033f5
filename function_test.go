package gwd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func postMap(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	patrolSearch(rec, req)
	return rec
}

func TestPatrolSearch(t *testing.T) {
	raw, err := os.ReadFile("testdata/d6_sample.txt")
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	rec := postMap(t, "/?workers=2", string(raw))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Visited != 41 {
		t.Errorf("visited = %d, want 41", resp.Visited)
	}
	if resp.Loops != 6 {
		t.Errorf("loops = %d, want 6", resp.Loops)
	}
	if resp.Workers != 2 {
		t.Errorf("workers = %d, want 2", resp.Workers)
	}
	if resp.RunID == "" {
		t.Error("run_id is empty")
	}
}

func TestPatrolSearch_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	patrolSearch(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status %d, want 405", rec.Code)
	}
}

func TestPatrolSearch_BadMap(t *testing.T) {
	rec := postMap(t, "/", "...\n.#.\n")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestPatrolSearch_BadWorkers(t *testing.T) {
	rec := postMap(t, "/?workers=zero", "^..\n...\n")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}
