package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pageParam reads the requested page from the query string, defaulting to 1.
func pageParam(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

func writeView(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	body, err := h.BlogService.IndexView(r.Context(), pageParam(r), r.URL.RawQuery)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeView(w, body)
}

func (h *Handlers) PostsRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusMovedPermanently)
}

func (h *Handlers) Post(w http.ResponseWriter, r *http.Request) {
	post, err := h.Resolver.PostBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	body, err := h.BlogService.PostView(r.Context(), post)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeView(w, body)
}

func (h *Handlers) Tag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.Resolver.Tag(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	body, err := h.BlogService.TagView(r.Context(), tag, pageParam(r), r.URL.RawQuery)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeView(w, body)
}

func (h *Handlers) AllTags(w http.ResponseWriter, r *http.Request) {
	body, err := h.BlogService.AllTagsView(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeView(w, body)
}

func (h *Handlers) Author(w http.ResponseWriter, r *http.Request) {
	author, err := h.Resolver.UserByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	body, err := h.BlogService.AuthorView(r.Context(), author, pageParam(r), r.URL.RawQuery)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeView(w, body)
}

func (h *Handlers) AllAuthors(w http.ResponseWriter, r *http.Request) {
	body, err := h.BlogService.AllAuthorsView(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeView(w, body)
}

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")

	body, err := h.BlogService.SearchView(r.Context(), term, pageParam(r), r.URL.RawQuery)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	writeView(w, body)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
