package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListComments(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, comments)
}

func (h *BlogHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	index, ok := h.commentIndex(w, r)
	if !ok {
		return
	}
	comment, err := h.service.GetComment(r.Context(), chi.URLParam(r, "postID"), index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, comment)
}

// AddComment appends a comment and returns its index
func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	ref, err := h.service.AddComment(r.Context(), chi.URLParam(r, "postID"), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, ref)
}

func (h *BlogHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	index, ok := h.commentIndex(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	if err := h.service.UpdateComment(r.Context(), chi.URLParam(r, "postID"), index, payload); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *BlogHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	index, ok := h.commentIndex(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteComment(r.Context(), chi.URLParam(r, "postID"), index); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
