package handlers

import (
	"blog/models"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddComment appends a comment to the post. A blank comment is dropped and
// the caller lands back on the post page either way.
func AddComment(c *gin.Context, user *models.User) {
	id, err := idParam(c)
	if err != nil {
		NotFoundPage(c)
		return
	}
	post, err := models.PostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFoundPage(c)
		return
	}
	if err != nil {
		ServerError(c)
		return
	}
	if _, err := models.AddComment(&post, user, c.PostForm("text")); err != nil &&
		!errors.Is(err, models.ErrEmptyComment) {
		log.Printf("AddComment on post %d: %v", post.ID, err)
	}
	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}
