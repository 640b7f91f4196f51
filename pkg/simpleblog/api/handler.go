package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// BlogHandler handles HTTP requests for posts, comments and authors
type BlogHandler struct {
	service simpleblog.Service
	logger  *slog.Logger
}

// NewBlogHandler creates a new blog handler. A nil logger uses slog.Default().
func NewBlogHandler(service simpleblog.Service, logger *slog.Logger) *BlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlogHandler{
		service: service,
		logger:  logger,
	}
}

// Routes returns the routes for the blog
func (h *BlogHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Post("/", h.CreatePost)
		r.Get("/{postID}", h.GetPost)
		r.Put("/{postID}", h.UpdatePost)
		r.Delete("/{postID}", h.DeletePost)

		r.Get("/{postID}/comments", h.ListComments)
		r.Post("/{postID}/comments", h.AddComment)
		r.Get("/{postID}/comments/{commentIdx}", h.GetComment)
		r.Put("/{postID}/comments/{commentIdx}", h.UpdateComment)
		r.Delete("/{postID}/comments/{commentIdx}", h.DeleteComment)
	})

	r.Route("/authors", func(r chi.Router) {
		r.Get("/", h.ListAuthors)
		r.Post("/", h.CreateAuthor)
		r.Get("/{authorID}", h.GetAuthor)
		r.Put("/{authorID}", h.UpdateAuthor)
		r.Delete("/{authorID}", h.DeleteAuthor)
		r.Get("/{authorID}/posts", h.PostsForAuthor)
		r.Get("/{authorID}/comments", h.CommentsForAuthor)
	})

	return r
}

// StatusFor maps an error kind to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch simpleblog.KindOf(err) {
	case simpleblog.KindMissingPayload, simpleblog.KindInvalidShape, simpleblog.KindConflict:
		return http.StatusBadRequest
	case simpleblog.KindUnknownAuthor:
		return http.StatusUnauthorized
	case simpleblog.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err with its mapped status and an empty body.
func (h *BlogHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "request failed",
		"request_id", RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err)
	w.WriteHeader(status)
}

func (h *BlogHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, v)
}

// decodePayload parses the request body as exactly one JSON object.
func (h *BlogHandler) decodePayload(w http.ResponseWriter, r *http.Request) (simpleblog.Payload, bool) {
	payload, err := readPayload(r.Body)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.logger.WarnContext(r.Context(), "invalid request body",
			"request_id", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err)
		w.WriteHeader(status)
		return nil, false
	}
	return payload, true
}

var errTrailingData = errors.New("unexpected data after JSON object")

func readPayload(body io.Reader) (simpleblog.Payload, error) {
	dec := json.NewDecoder(body)
	var payload simpleblog.Payload
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errors.New("body must be a JSON object")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingData
	}
	return payload, nil
}

// commentIndex parses the {commentIdx} path parameter. An index that is not a
// non-negative integer cannot address any comment and is reported as 404.
func (h *BlogHandler) commentIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "commentIdx")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		h.writeError(w, r, &simpleblog.BlogError{Op: "parse", Entity: "comment index", ID: raw, Err: simpleblog.ErrNotFound})
		return 0, false
	}
	return index, true
}
