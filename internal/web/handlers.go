package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bcre/importer/internal/database"
	"github.com/bcre/importer/internal/importer"
	"github.com/bcre/importer/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRealtors(w http.ResponseWriter, r *http.Request) {
	realtors, err := s.dir.Realtors(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if realtors == nil {
		realtors = []database.Realtor{}
	}
	writeJSON(w, http.StatusOK, realtors)
}

func (s *Server) handleGetRealtor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id must be an integer"})
		return
	}

	realtor, err := s.dir.GetRealtor(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "realtor not found"})
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, realtor)
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	var arg database.ListListingsParams

	if d := r.URL.Query().Get("district"); d != "" {
		arg.District = pgtype.Text{String: d, Valid: true}
	}
	if raw := r.URL.Query().Get("realtor_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "realtor_id must be an integer"})
			return
		}
		arg.RealtorID = pgtype.Int8{Int64: id, Valid: true}
	}

	listings, err := s.dir.Listings(r.Context(), arg)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if listings == nil {
		listings = []database.Listing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

func (s *Server) handleListDistricts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, importer.ValidDistricts)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("handler error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
