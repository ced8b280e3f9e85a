package sources

import (
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/kerbaras/nebulae/pkg/data"
)

const DefaultNASAURL = "https://images-api.nasa.gov"

// NASA queries the NASA image and video library search API.
type NASA struct {
	api *API
}

// NewNASA builds a client for the archive. Archive calls carry no deadline.
func NewNASA(baseURL string) *NASA {
	if baseURL == "" {
		baseURL = DefaultNASAURL
	}
	return &NASA{api: NewAPI(baseURL, 0)}
}

type nasaItem struct {
	Data []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DateCreated string `json:"date_created"`
	} `json:"data"`
	Links []struct {
		Href string `json:"href"`
	} `json:"links"`
}

type nasaResponse struct {
	Collection struct {
		Items []nasaItem `json:"items"`
	} `json:"collection"`
}

// Search runs a free-text image search, capped at max results, preserving
// the API response order. Apostrophes confuse the archive query parser and
// are stripped before the call.
func (n *NASA) Search(query string, max int) ([]data.ImageCandidate, error) {
	query = strings.TrimSpace(strings.ReplaceAll(query, "'", ""))
	params := url.Values{
		"q":          {query},
		"media_type": {"image"},
	}

	var res nasaResponse
	if err := n.api.Get("/search", params, &res); err != nil {
		return nil, err
	}

	items := lo.Slice(res.Collection.Items, 0, max)
	return lo.Map(items, func(item nasaItem, _ int) data.ImageCandidate {
		return toCandidate(item)
	}), nil
}

func toCandidate(item nasaItem) data.ImageCandidate {
	cand := data.ImageCandidate{
		Title:       "untitled",
		Description: "no description",
		DateCreated: "unknown date",
	}
	if len(item.Data) > 0 {
		block := item.Data[0]
		if block.Title != "" {
			cand.Title = block.Title
		}
		if block.Description != "" {
			cand.Description = block.Description
		}
		if block.DateCreated != "" {
			cand.DateCreated = block.DateCreated
		}
	}
	if len(item.Links) > 0 {
		cand.URL = item.Links[0].Href
	}
	return cand
}
