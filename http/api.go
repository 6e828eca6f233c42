package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/form"
)

// MaxRequestBytes bounds JSON request bodies.
const MaxRequestBytes = 1 << 20

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	in := smartscrape.DefaultInputs()
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		Error(w, r, smartscrape.Errorf(smartscrape.EINVALID, "invalid JSON body: %v", err))
		return
	}

	out := sess.Submit(r.Context(), in)
	s.metrics.Observe(out)

	writeJSON(w, outcomeStatus(out), out)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"busy": sess.Busy()})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"canceled": sess.Cancel()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// outcomeStatus maps an outcome to the API response status.
func outcomeStatus(out *form.Outcome) int {
	switch out.State {
	case form.StateSucceeded:
		return http.StatusOK
	case form.StateRejected:
		return ErrorStatusCode(out.Code)
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
