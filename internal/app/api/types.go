package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	app "github.com/diwise/lora-mint/internal/app/loramint"
)

type WebhookResponse struct {
	Ok    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (r WebhookResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

type links struct {
	Self  *string `json:"self,omitempty"`
	First *string `json:"first,omitempty"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Last  *string `json:"last,omitempty"`
}

type ApiResponse struct {
	Data       any                    `json:"data"`
	Pagination app.PaginationResponse `json:"pagination"`
	Links      *links                 `json:"links,omitempty"`
}

func NewApiResponse[T any](r *http.Request, page app.Page[T]) ApiResponse {
	data := page.Data
	if data == nil {
		data = []T{}
	}

	return ApiResponse{
		Data:       data,
		Pagination: page.Pagination,
		Links:      createLinks(r.URL, page.Pagination),
	}
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func createLinks(u *url.URL, p app.PaginationResponse) *links {
	if p.TotalPages <= 1 {
		return nil
	}

	query := u.Query()
	query.Set("per_page", strconv.Itoa(p.PerPage))

	newUrl := func(page int) *string {
		query.Set("page", strconv.Itoa(page))
		u_ := url.URL{Path: u.Path, RawQuery: query.Encode()}
		s := u_.String()
		return &s
	}

	links := &links{
		Self:  newUrl(p.Page),
		First: newUrl(1),
		Last:  newUrl(p.TotalPages),
	}

	if p.HasNext {
		links.Next = newUrl(p.Page + 1)
	}

	if p.Page > 1 {
		links.Prev = newUrl(min(p.Page-1, p.TotalPages))
	}

	return links
}
