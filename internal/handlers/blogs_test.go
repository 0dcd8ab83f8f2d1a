package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SrushtiHaryan/blog-app-server/internal/db"
	"github.com/SrushtiHaryan/blog-app-server/internal/models"
)

func createBlog(t *testing.T, r chi.Router, author string) map[string]string {
	t.Helper()
	body := map[string]string{
		"title":     "First post",
		"imageUrl":  "http://img/1.png",
		"highlight": "intro",
		"content":   "hello world",
		"author":    author,
	}
	rec := doJSON(t, r, http.MethodPost, "/api/posts", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	return body
}

func TestCreateBlogUnknownAuthor(t *testing.T) {
	store := db.NewMemory()
	r := newTestRouter(store)

	rec := doJSON(t, r, http.MethodPost, "/api/posts", map[string]string{
		"title":  "orphan",
		"author": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User not found", body["error"])

	// no item may have been created
	blogs, err := store.ListBlogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestCreateAndGetBlogRoundTrip(t *testing.T) {
	store := db.NewMemory()
	r := newTestRouter(store)
	register(t, r, "alice", "a@x.com", "pw123")

	submitted := createBlog(t, r, "alice")

	rec := doJSON(t, r, http.MethodGet, "/api/blogs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.BlogView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	got := list[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, submitted["title"], got.Title)
	assert.Equal(t, submitted["imageUrl"], got.ImageURL)
	assert.Equal(t, submitted["highlight"], got.Highlight)
	assert.Equal(t, submitted["content"], got.Content)
	assert.Equal(t, "alice", got.Author, "stored author id must come back as the username")

	rec = doJSON(t, r, http.MethodGet, "/api/blog/"+got.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var single models.BlogView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &single))
	assert.Equal(t, got, single)
}

func TestGetBlogNotFound(t *testing.T) {
	r := newTestRouter(db.NewMemory())

	rec := doJSON(t, r, http.MethodGet, "/api/blog/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Blog not found", body["message"])
}

func TestUpdateBlog(t *testing.T) {
	store := db.NewMemory()
	r := newTestRouter(store)
	register(t, r, "alice", "a@x.com", "pw123")
	createBlog(t, r, "alice")

	blogs, err := store.ListBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	id := blogs[0].ID

	rec := doJSON(t, r, http.MethodPut, "/api/blog/"+id, map[string]string{
		"title":     "Edited",
		"imageUrl":  "http://img/2.png",
		"highlight": "revised",
		"content":   "bye",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Blog updated successfully", body["message"])
	require.Contains(t, body, "blog")

	rec = doJSON(t, r, http.MethodGet, "/api/blog/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.BlogView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Edited", got.Title)
	assert.Equal(t, "http://img/2.png", got.ImageURL)
	assert.Equal(t, "revised", got.Highlight)
	assert.Equal(t, "bye", got.Content)
	assert.Equal(t, "alice", got.Author, "update must not touch the author")
}

func TestUpdateBlogNotFound(t *testing.T) {
	r := newTestRouter(db.NewMemory())

	rec := doJSON(t, r, http.MethodPut, "/api/blog/"+uuid.NewString(), map[string]string{
		"title": "x",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Blog not found", body["message"])
}

func TestDeleteBlog(t *testing.T) {
	store := db.NewMemory()
	r := newTestRouter(store)
	register(t, r, "alice", "a@x.com", "pw123")
	createBlog(t, r, "alice")

	blogs, err := store.ListBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	id := blogs[0].ID

	rec := doJSON(t, r, http.MethodDelete, "/api/blog/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Blog deleted successfully", body["message"])

	rec = doJSON(t, r, http.MethodGet, "/api/blog/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/blog/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBlogsEmpty(t *testing.T) {
	r := newTestRouter(db.NewMemory())

	rec := doJSON(t, r, http.MethodGet, "/api/blogs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
