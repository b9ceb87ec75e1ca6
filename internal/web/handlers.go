package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flthistle/thistle-cube/internal/cube"
)

// SolveRequest is the POST /api/solve body: a scramble to reduce to
// the identity.
type SolveRequest struct {
	Scramble string `json:"scramble"`
}

// SolveResponse carries the solution: the moves of all four phases,
// concatenated into one move string.
type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
	Duration string `json:"duration"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	moves, err := cube.ParseMoves(req.Scramble)
	if err != nil {
		http.Error(w, "parsing scramble: "+err.Error(), http.StatusBadRequest)
		return
	}

	c := cube.New()
	c.ApplyAll(moves)

	start := time.Now()
	solution, err := s.tables.Solve(c)
	elapsed := time.Since(start)
	if err != nil {
		http.Error(w, "solving: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := SolveResponse{
		Solution: cube.FormatMoves(solution),
		Moves:    len(solution),
		Duration: elapsed.String(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
