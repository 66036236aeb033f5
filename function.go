package gwd

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/google/uuid"
)

func init() {
	functions.HTTP("PatrolSearch", patrolSearch)
}

// searchResponse is the JSON body returned for a successful search.
type searchResponse struct {
	RunID   string `json:"run_id"`
	Workers int    `json:"workers"`
	Report
}

// patrolSearch handles a POST whose body is a raw patrol map and
// responds with the visited and loop counts. The worker pool size can
// be overridden with the "workers" query parameter.
func patrolSearch(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	log := slog.With("run", runID)

	if r.Method != http.MethodPost {
		http.Error(w, "only POST is supported", http.StatusMethodNotAllowed)
		return
	}

	workers := runtime.NumCPU()
	if raw := r.URL.Query().Get("workers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "workers must be a positive integer", http.StatusBadRequest)
			return
		}
		workers = n
	}

	g, err := GridFromReader(r.Body)
	if err != nil {
		log.Warn("rejected map", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := Solve(r.Context(), g, workers)
	if err != nil {
		log.Error("search failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Info("search complete",
		"rows", g.Rows(), "cols", g.Cols(),
		"visited", report.Visited, "loops", report.Loops,
		"workers", workers)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(searchResponse{
		RunID:   runID,
		Workers: workers,
		Report:  report,
	})
}
