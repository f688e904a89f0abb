package server

import (
	"net/http"

	"renova-club/internal/service"

	"github.com/gorilla/mux"
)

func athleteFormFromRequest(r *http.Request) service.AthleteForm {
	return service.AthleteForm{
		Name:          r.FormValue("nome"),
		BirthDate:     r.FormValue("nascimento"),
		Height:        r.FormValue("altura"),
		Address:       r.FormValue("endereco"),
		Phone:         r.FormValue("telefone"),
		GuardianName:  r.FormValue("responsavel"),
		GuardianPhone: r.FormValue("telefone_responsavel"),
		School:        r.FormValue("escola"),
		Club:          r.FormValue("clube"),
		TrainingKit:   r.FormValue("padrao_treino"),
		GameKit:       r.FormValue("padrao_jogo"),
		ShirtColor:    r.FormValue("camisa"),
		ShirtNumber:   r.FormValue("numero"),
	}
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := s.dashboard.Counts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"contagem": counts,
		"mensagem": popFlash(w, r),
	})
}

func (s *Server) ListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := s.athletes.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"atletas":  athletes,
		"mensagem": popFlash(w, r),
	})
}

func (s *Server) RegisterAthlete(w http.ResponseWriter, r *http.Request) {
	if _, err := s.athletes.Register(r.Context(), athleteFormFromRequest(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	SetFlash(w, "Atleta cadastrado com sucesso!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GetAthlete serves the edit-form pre-fill.
func (s *Server) GetAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	athlete, err := s.athletes.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, athlete)
}

func (s *Server) EditAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.athletes.Edit(r.Context(), id, athleteFormFromRequest(r)); err != nil {
		s.writeError(w, r, err)
		return
	}

	SetFlash(w, "Atleta atualizado!")
	http.Redirect(w, r, "/atletas", http.StatusSeeOther)
}

func (s *Server) RemoveAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.athletes.Remove(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	SetFlash(w, "Atleta removido.")
	http.Redirect(w, r, "/atletas", http.StatusSeeOther)
}

func (s *Server) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	competitions, err := s.competitions.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"competicoes": competitions,
		"mensagem":    popFlash(w, r),
	})
}

func (s *Server) RegisterCompetition(w http.ResponseWriter, r *http.Request) {
	form := service.CompetitionForm{
		Name:       r.FormValue("nome"),
		Date:       r.FormValue("data"),
		Categories: r.FormValue("subs"),
		Location:   r.FormValue("local"),
	}

	if _, err := s.competitions.Register(r.Context(), form); err != nil {
		s.writeError(w, r, err)
		return
	}

	SetFlash(w, "Competição cadastrada!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) LookupCEP(w http.ResponseWriter, r *http.Request) {
	address, err := s.cep.Lookup(r.Context(), mux.Vars(r)["cep"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, address)
}
