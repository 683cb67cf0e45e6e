package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/luno/jettison/log"

	"moneybox/internal/domain"
)

const (
	loginPath          = "/users/login"
	investorProducts   = "/investorproducts"
	oneOffPaymentsPath = "/oneoffpayments"
)

// Headers identify the client application to the API.
type Headers struct {
	AppID      string
	AppVersion string
	APIVersion string
}

// HTTP is a domain.DataProvider backed by net/http.
type HTTP struct {
	Base    string
	HTTP    *http.Client
	Headers Headers
}

// NewHTTP returns a provider for base. A nil client means http.DefaultClient.
func NewHTTP(base string, client *http.Client, h Headers) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client, Headers: h}
}

func (c *HTTP) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	var out domain.LoginResponse
	if err := c.do(ctx, http.MethodPost, loginPath, "", req, &out); err != nil {
		return domain.LoginResponse{}, err
	}
	return out, nil
}

func (c *HTTP) FetchProducts(ctx context.Context, token string) (domain.AccountResponse, error) {
	var out domain.AccountResponse
	if err := c.do(ctx, http.MethodGet, investorProducts, token, nil, &out); err != nil {
		return domain.AccountResponse{}, err
	}
	return out, nil
}

func (c *HTTP) AddMoney(
	ctx context.Context,
	token string,
	req domain.OneOffPaymentRequest,
) (domain.OneOffPaymentResponse, error) {
	var out domain.OneOffPaymentResponse
	if err := c.do(ctx, http.MethodPost, oneOffPaymentsPath, token, req, &out); err != nil {
		return domain.OneOffPaymentResponse{}, err
	}
	return out, nil
}

func (c *HTTP) do(ctx context.Context, method, path, token string, in any, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("AppId", c.Headers.AppID)
	req.Header.Set("appVersion", c.Headers.AppVersion)
	req.Header.Set("apiVersion", c.Headers.APIVersion)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Error(ctx, errors.Wrap(err, "api request failed", j.MKV{"method": method, "path": path}))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeAPIError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeAPIError turns a non-2xx response into *domain.APIError, falling back
// to method, path and status text when the body carries no message.
func decodeAPIError(method, path string, resp *http.Response) error {
	apiErr := &domain.APIError{StatusCode: resp.StatusCode}

	var er domain.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil {
		apiErr.Name = er.Name
		apiErr.Message = er.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("%s %s: %s", method, path, resp.Status)
	}
	return apiErr
}

// Compile-time assertion that HTTP implements domain.DataProvider.
var _ domain.DataProvider = (*HTTP)(nil)
