package handlers

import (
	"blog/auth"
	"blog/db"
	"blog/models"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func setupTestDB(t *testing.T) {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:handlerdb%d?mode=memory&cache=shared", n)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("cannot open test database: %v", err)
	}
	db.Instance = gdb
	models.Init()
}

func mustUser(t *testing.T, username string) models.User {
	t.Helper()
	user, err := models.UserCreate(username, username, "secret")
	if err != nil {
		t.Fatalf("UserCreate(%q): %v", username, err)
	}
	return user
}

func mustPost(t *testing.T, author *models.User, text string) models.Post {
	t.Helper()
	post := models.Post{Text: text, AuthorID: author.ID}
	if err := db.Instance.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

// newRouter builds an engine with the real templates loaded, so the 404 and
// form pages can render.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")
	return router
}

// asUser adapts an authenticated handler for direct routing, standing in for
// the session-backed auth router.
func asUser(user *models.User, handler auth.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler(c, user)
	}
}

func serve(t *testing.T, router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("WriteField(%q): %v", key, err)
		}
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
