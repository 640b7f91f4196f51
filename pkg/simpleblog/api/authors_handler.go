package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *BlogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.ListAuthors(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, authors)
}

func (h *BlogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	author, err := h.service.GetAuthor(r.Context(), chi.URLParam(r, "authorID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, author)
}

func (h *BlogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	ref, err := h.service.CreateAuthor(r.Context(), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, ref)
}

// UpdateAuthor replaces the author named by the payload id. The path id is
// informational only.
func (h *BlogHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	if err := h.service.UpdateAuthor(r.Context(), payload); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteAuthor deletes an author along with their posts and comments
func (h *BlogHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.DeleteAuthor(r.Context(), chi.URLParam(r, "authorID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *BlogHandler) PostsForAuthor(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.PostsForAuthor(r.Context(), chi.URLParam(r, "authorID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, posts)
}

func (h *BlogHandler) CommentsForAuthor(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.CommentsForAuthor(r.Context(), chi.URLParam(r, "authorID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, comments)
}
