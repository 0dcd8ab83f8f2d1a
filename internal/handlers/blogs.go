package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SrushtiHaryan/blog-app-server/internal/db"
	"github.com/SrushtiHaryan/blog-app-server/internal/models"
)

type BlogsHandler struct {
	store  db.Store
	logger *slog.Logger
}

func NewBlogsHandler(store db.Store, logger *slog.Logger) *BlogsHandler {
	return &BlogsHandler{store: store, logger: logger}
}

type CreateBlogRequest struct {
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	Highlight string `json:"highlight"`
	Content   string `json:"content"`
	// Author is the author's username; it is resolved to the user's id
	// before the post is stored.
	Author string `json:"author"`
}

type UpdateBlogRequest struct {
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	Highlight string `json:"highlight"`
	Content   string `json:"content"`
}

func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	author, err := h.store.GetUserByUsername(r.Context(), req.Author)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("resolve author", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	blog := &models.Blog{
		ID:        uuid.NewString(),
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Highlight: req.Highlight,
		Content:   req.Content,
		AuthorID:  author.ID,
	}
	if err := h.store.CreateBlog(r.Context(), blog); err != nil {
		h.logger.Error("create blog", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondMessage(w, http.StatusCreated, "Blog post created successfully")
}

func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.store.ListBlogs(r.Context())
	if err != nil {
		h.logger.Error("list blogs", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, blogs)
}

func (h *BlogsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	blog, err := h.store.GetBlogByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"message": "Blog not found"})
			return
		}
		h.logger.Error("get blog", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, blog)
}

func (h *BlogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	blog, err := h.store.UpdateBlog(r.Context(), id, db.BlogUpdate{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Highlight: req.Highlight,
		Content:   req.Content,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"message": "Blog not found"})
			return
		}
		h.logger.Error("update blog", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteBlog(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"message": "Blog not found"})
			return
		}
		h.logger.Error("delete blog", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondMessage(w, http.StatusOK, "Blog deleted successfully")
}
