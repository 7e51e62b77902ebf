package models

import (
	"blog/db"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupTestDB gives the test its own in-memory database. The shared cache
// keeps the database alive across the pooled connections.
func setupTestDB(t *testing.T) {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("cannot open test database: %v", err)
	}
	db.Instance = gdb
	Init()
}

func mustUser(t *testing.T, username string) User {
	t.Helper()
	user, err := UserCreate(username, username, "secret")
	if err != nil {
		t.Fatalf("UserCreate(%q): %v", username, err)
	}
	return user
}

func mustGroup(t *testing.T, slug string) Group {
	t.Helper()
	group := Group{Slug: slug, Title: slug}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatalf("create group %q: %v", slug, err)
	}
	return group
}

func mustPost(t *testing.T, author *User, group *Group, text string) Post {
	t.Helper()
	post := Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		t.Fatalf("create post %q: %v", text, err)
	}
	return post
}

func followCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := db.Instance.Model(&Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("count follows: %v", err)
	}
	return count
}
