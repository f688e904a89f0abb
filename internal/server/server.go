// Package server is the HTTP surface of the club application: form posts
// in, JSON out, flash cookies carrying the success messages across
// redirects.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"renova-club/internal/api"
	"renova-club/internal/domain"
	"renova-club/internal/middleware"
	"renova-club/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Server struct {
	athletes     *service.AthleteService
	competitions *service.CompetitionService
	dashboard    *service.DashboardService
	cep          *api.CEPClient
	logger       zerolog.Logger
}

func NewServer(
	athletes *service.AthleteService,
	competitions *service.CompetitionService,
	dashboard *service.DashboardService,
	cep *api.CEPClient,
	logger zerolog.Logger,
) *Server {
	return &Server{
		athletes:     athletes,
		competitions: competitions,
		dashboard:    dashboard,
		cep:          cep,
		logger:       logger,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.Dashboard).Methods(http.MethodGet)
	r.HandleFunc("/atletas", s.ListAthletes).Methods(http.MethodGet)
	r.HandleFunc("/cadastrar_atleta", s.RegisterAthlete).Methods(http.MethodPost)
	r.HandleFunc("/editar_atleta/{id:[0-9]+}", s.GetAthlete).Methods(http.MethodGet)
	r.HandleFunc("/editar_atleta/{id:[0-9]+}", s.EditAthlete).Methods(http.MethodPost)
	r.HandleFunc("/remover_atleta/{id:[0-9]+}", s.RemoveAthlete).Methods(http.MethodPost)
	r.HandleFunc("/competicoes", s.ListCompetitions).Methods(http.MethodGet)
	r.HandleFunc("/cadastrar_competicao", s.RegisterCompetition).Methods(http.MethodPost)
	r.HandleFunc("/cep/{cep}", s.LookupCEP).Methods(http.MethodGet)

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAthleteNotFound),
		errors.Is(err, domain.ErrCompetitionNotFound),
		errors.Is(err, domain.ErrCEPNotFound):
		status = http.StatusNotFound
	}

	s.logger.Error().
		Err(err).
		Int("status", status).
		Str("path", r.URL.Path).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Msg("request failed")
	s.writeJSON(w, status, map[string]string{"erro": err.Error()})
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
