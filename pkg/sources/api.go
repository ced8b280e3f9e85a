package sources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/morikuni/failure/v2"
	"github.com/motemen/go-loghttp"
)

// API is a minimal JSON GET client shared by the service clients. The
// transport logs requests at debug level; a zero timeout disables the
// deadline entirely (the image archive calls run without one).
type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	client := &http.Client{
		Timeout:   timeout,
		Transport: loghttp.DefaultTransport,
	}
	return &API{client: client, baseURL: baseURL}
}

func (a *API) Get(path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return failure.Wrap(err, failure.WithCode(ErrTransport))
	}
	req.Header.Set("Accept", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		return failure.Wrap(err, failure.WithCode(ErrTransport))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return failure.New(ErrTransport,
			failure.Message("unexpected status"),
			failure.Context{"status": resp.Status, "url": req.URL.String()},
		)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return failure.Wrap(err, failure.WithCode(ErrMalformed))
	}
	return nil
}
