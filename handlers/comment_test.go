package handlers

import (
	"blog/db"
	"blog/models"
	"net/http"
	"net/url"
	"testing"
)

func commentCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := db.Instance.Model(&models.Comment{}).Count(&count).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	return count
}

func TestAddCommentRedirectsToPost(t *testing.T) {
	setupTestDB(t)
	author := mustUser(t, "author")
	reader := mustUser(t, "reader")
	post := mustPost(t, &author, "a post")

	router := newRouter(t)
	router.POST("/posts/:id/comment/", asUser(&reader, AddComment))
	w := serve(t, router, formRequest(
		postDetailPath(post.ID)+"comment/", url.Values{"text": {"well said"}}))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if got := w.Header().Get("Location"); got != postDetailPath(post.ID) {
		t.Errorf("Location = %q, want %q", got, postDetailPath(post.ID))
	}
	if got := commentCount(t); got != 1 {
		t.Errorf("comment count = %d, want 1", got)
	}
}

// An empty comment is dropped, but the caller still lands on the post page.
func TestAddCommentEmptyText(t *testing.T) {
	setupTestDB(t)
	author := mustUser(t, "author")
	post := mustPost(t, &author, "a post")

	router := newRouter(t)
	router.POST("/posts/:id/comment/", asUser(&author, AddComment))
	w := serve(t, router, formRequest(
		postDetailPath(post.ID)+"comment/", url.Values{"text": {""}}))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if got := w.Header().Get("Location"); got != postDetailPath(post.ID) {
		t.Errorf("Location = %q, want %q", got, postDetailPath(post.ID))
	}
	if got := commentCount(t); got != 0 {
		t.Errorf("comment count = %d, want 0", got)
	}
}

func TestAddCommentUnknownPost(t *testing.T) {
	setupTestDB(t)
	user := mustUser(t, "reader")

	router := newRouter(t)
	router.POST("/posts/:id/comment/", asUser(&user, AddComment))
	w := serve(t, router, formRequest(
		"/posts/999/comment/", url.Values{"text": {"hello"}}))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
