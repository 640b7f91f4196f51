package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListPosts returns every post
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, posts)
}

// GetPost returns one post
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, post)
}

// CreatePost creates a post and returns its derived id
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	ref, err := h.service.CreatePost(r.Context(), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, ref)
}

// UpdatePost replaces a post and returns its possibly new id
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	ref, err := h.service.UpdatePost(r.Context(), chi.URLParam(r, "postID"), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, ref)
}

// DeletePost deletes a post
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePost(r.Context(), chi.URLParam(r, "postID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
