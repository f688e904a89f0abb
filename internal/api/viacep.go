// Package api holds outbound HTTP clients.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"renova-club/internal/config"
	"renova-club/internal/domain"

	"github.com/valyala/fasthttp"
)

// CEPClient resolves Brazilian postal codes through the public ViaCEP API,
// used to prefill the address field on the registration form.
type CEPClient struct {
	baseURL string
	client  *fasthttp.Client
}

type CEPAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         bool   `json:"erro,omitempty"`
}

func NewCEPClient(cfg *config.Config) *CEPClient {
	return &CEPClient{
		baseURL: cfg.ViaCEPBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *CEPClient) Lookup(ctx context.Context, cep string) (*CEPAddress, error) {
	cep = strings.ReplaceAll(cep, "-", "")

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep))
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("viacep request failed: %w", err)
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("viacep request failed: %w", err)
		}
	}

	// ViaCEP answers 400 for malformed codes and {"erro": true} for
	// well-formed codes that don't exist.
	if resp.StatusCode() == fasthttp.StatusBadRequest {
		return nil, fmt.Errorf("%w: %q", domain.ErrCEPNotFound, cep)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("viacep error: %d", resp.StatusCode())
	}

	var address CEPAddress
	if err := json.Unmarshal(resp.Body(), &address); err != nil {
		return nil, fmt.Errorf("failed to decode viacep response: %w", err)
	}
	if address.Erro {
		return nil, fmt.Errorf("%w: %q", domain.ErrCEPNotFound, cep)
	}

	return &address, nil
}
