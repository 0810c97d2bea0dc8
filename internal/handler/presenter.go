package handlers

import (
	"context"
	"encoding/json"

	"blogpress/internal/service"
)

// JSONPresenter renders every aggregate payload as JSON. It is the concrete
// adapter behind the service.Presenter contract.
type JSONPresenter struct{}

func NewJSONPresenter() *JSONPresenter {
	return &JSONPresenter{}
}

func (p *JSONPresenter) IndexView(_ context.Context, payload service.IndexPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func (p *JSONPresenter) PostView(_ context.Context, payload service.PostPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func (p *JSONPresenter) TagView(_ context.Context, payload service.TagPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func (p *JSONPresenter) AuthorView(_ context.Context, payload service.AuthorPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func (p *JSONPresenter) AllTagsView(_ context.Context, payload service.AllTagsPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func (p *JSONPresenter) AllAuthorsView(_ context.Context, payload service.AllAuthorsPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func (p *JSONPresenter) SearchView(_ context.Context, payload service.SearchPayload) ([]byte, error) {
	return json.Marshal(payload)
}
