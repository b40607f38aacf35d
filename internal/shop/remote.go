package shop

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	"github.com/pkg/errors"
)

// RemoteSource drives the storefront REST API. Every call suspends the
// workflow until the response arrives; a failed call completes with an
// error from the shop taxonomy rather than staying pending.
type RemoteSource struct {
	base    string
	timeout time.Duration
}

func NewRemoteSource(apiURL string) *RemoteSource {
	return &RemoteSource{
		base:    strings.TrimRight(apiURL, "/"),
		timeout: 15 * time.Second,
	}
}

func (s *RemoteSource) url(format string, args ...interface{}) string {
	return s.base + fmt.Sprintf(format, args...)
}

// call runs one HTTP exchange and maps the response envelope onto the
// shop error taxonomy. out may be nil when the caller only cares about
// success.
func (s *RemoteSource) call(ctx context.Context, df *dataflow.DataFlow, out interface{}) error {
	var code int
	var body string
	err := df.WithContext(ctx).SetTimeout(s.timeout).Code(&code).BindBody(&body).Do()
	if err != nil {
		return errors.Wrap(ErrTransport, err.Error())
	}
	switch {
	case code == http.StatusNotFound:
		return errors.Wrap(ErrNotFound, apiErrorMessage(body))
	case code == http.StatusBadRequest:
		return errors.Wrap(ErrValidation, apiErrorMessage(body))
	case code < 200 || code >= 300:
		return errors.Wrapf(ErrTransport, "status %d: %s", code, apiErrorMessage(body))
	}
	if out == nil {
		return nil
	}
	if err := json.UnmarshalFromString(body, out); err != nil {
		return errors.Wrap(ErrTransport, err.Error())
	}
	return nil
}

func apiErrorMessage(body string) string {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.UnmarshalFromString(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(body)
}

func (s *RemoteSource) List(ctx context.Context) ([]Product, error) {
	var resp struct {
		Data []Product `json:"data"`
	}
	if err := s.call(ctx, gout.GET(s.url("/api/products")), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *RemoteSource) Get(ctx context.Context, id int64) (Product, error) {
	var resp struct {
		Data Product `json:"data"`
	}
	if err := s.call(ctx, gout.GET(s.url("/api/products/%d", id)), &resp); err != nil {
		return Product{}, err
	}
	return resp.Data, nil
}

func (s *RemoteSource) Create(ctx context.Context, draft Draft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}
	var resp struct {
		Data Product `json:"data"`
	}
	if err := s.call(ctx, gout.POST(s.url("/api/products")).SetJSON(draft), &resp); err != nil {
		return Product{}, err
	}
	return resp.Data, nil
}

func (s *RemoteSource) Replace(ctx context.Context, id int64, draft Draft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}
	var resp struct {
		Data Product `json:"data"`
	}
	if err := s.call(ctx, gout.PUT(s.url("/api/products/%d", id)).SetJSON(draft), &resp); err != nil {
		return Product{}, err
	}
	return resp.Data, nil
}

func (s *RemoteSource) Delete(ctx context.Context, id int64) error {
	return s.call(ctx, gout.DELETE(s.url("/api/products/%d", id)), nil)
}
