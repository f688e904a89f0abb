package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"renova-club/internal/api"
	"renova-club/internal/config"
	"renova-club/internal/database"
	"renova-club/internal/logger"
	"renova-club/internal/repository"
	"renova-club/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
)

type ServerSuite struct {
	suite.Suite
	router *mux.Router
	viacep *httptest.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.viacep = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "00000000") {
			fmt.Fprint(w, `{"erro": true}`)
			return
		}
		fmt.Fprint(w, `{"cep":"01001-000","logradouro":"Praça da Sé","localidade":"São Paulo","uf":"SP"}`)
	}))
	s.T().Cleanup(s.viacep.Close)

	cfg := &config.Config{
		DBPath:        filepath.Join(s.T().TempDir(), "test.db"),
		ViaCEPBaseURL: s.viacep.URL,
	}
	db, err := database.New(cfg, logger.Nop())
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	athleteRepo := repository.NewAthleteRepository(db, logger.Nop())
	competitionRepo := repository.NewCompetitionRepository(db, logger.Nop())

	srv := NewServer(
		service.NewAthleteService(athleteRepo, logger.Nop()),
		service.NewCompetitionService(competitionRepo, logger.Nop()),
		service.NewDashboardService(athleteRepo, logger.Nop()),
		api.NewCEPClient(cfg),
		logger.Nop(),
	)
	s.router = srv.Router()
}

func (s *ServerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func athleteForm(name, birth string) url.Values {
	return url.Values{
		"nome":                 {name},
		"nascimento":           {birth},
		"altura":               {"1.60"},
		"endereco":             {"Rua A, 1"},
		"telefone":             {"11 91111-1111"},
		"responsavel":          {"Paula"},
		"telefone_responsavel": {"11 92222-2222"},
		"escola":               {"EE Norte"},
		"clube":                {"Renova"},
		"padrao_treino":        {"preto"},
		"padrao_jogo":          {"branco"},
		"camisa":               {"preta"},
		"numero":               {"4"},
	}
}

func birthYearsBack(years int) string {
	return fmt.Sprintf("%04d-06-15", time.Now().Year()-years)
}

func (s *ServerSuite) TestRegisterAthleteRedirectsWithFlash() {
	rec := s.postForm("/cadastrar_atleta", athleteForm("Marina", birthYearsBack(13)))

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	s.Require().NotEmpty(cookies)
	s.Equal("flash", cookies[0].Name)

	// The dashboard consumes the flash and shows the new athlete in Sub15.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = s.do(req)
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Contagem map[string]int `json:"contagem"`
		Mensagem string         `json:"mensagem"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(1, body.Contagem["Sub15"])
	s.Equal("Atleta cadastrado com sucesso!", body.Mensagem)
}

func (s *ServerSuite) TestRegisterAthleteBadBirthDate() {
	rec := s.postForm("/cadastrar_atleta", athleteForm("Marina", "15/06/2013"))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestEditAthleteReclassifies() {
	s.postForm("/cadastrar_atleta", athleteForm("Caio", birthYearsBack(13)))

	rec := s.postForm("/editar_atleta/1", athleteForm("Caio", birthYearsBack(23)))
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/atletas", rec.Header().Get("Location"))

	rec = s.do(httptest.NewRequest(http.MethodGet, "/editar_atleta/1", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	var athlete map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &athlete))
	s.Equal("Adulto", athlete["sub"])
}

func (s *ServerSuite) TestGetUnknownAthleteIs404() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/editar_atleta/99", nil))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestRemoveAthlete() {
	s.postForm("/cadastrar_atleta", athleteForm("Lia", birthYearsBack(10)))

	rec := s.postForm("/remover_atleta/1", nil)
	s.Equal(http.StatusSeeOther, rec.Code)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/atletas", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Atletas []any `json:"atletas"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Empty(body.Atletas)
}

func (s *ServerSuite) TestCompetitionsNearestFirst() {
	now := time.Now()
	for days, name := range map[int]string{-1: "ontem", 3: "próxima", 10: "distante"} {
		rec := s.postForm("/cadastrar_competicao", url.Values{
			"nome":  {name},
			"data":  {now.AddDate(0, 0, days).Format("2006-01-02")},
			"subs":  {"Sub17"},
			"local": {"Quadra C"},
		})
		s.Require().Equal(http.StatusSeeOther, rec.Code)
	}

	rec := s.do(httptest.NewRequest(http.MethodGet, "/competicoes", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Competicoes []struct {
			Nome string `json:"nome"`
		} `json:"competicoes"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Competicoes, 3)
	s.Equal("ontem", body.Competicoes[0].Nome)
	s.Equal("próxima", body.Competicoes[1].Nome)
	s.Equal("distante", body.Competicoes[2].Nome)
}

func (s *ServerSuite) TestLookupCEP() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/cep/01001-000", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	var address map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &address))
	s.Equal("São Paulo", address["localidade"])
}

func (s *ServerSuite) TestLookupUnknownCEPIs404() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/cep/00000000", nil))
	s.Equal(http.StatusNotFound, rec.Code)
}
