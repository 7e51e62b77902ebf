package handlers

import (
	"blog/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProfileFollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	err := models.FollowAuthor(user, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFoundPage(c)
		return
	}
	if err != nil {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, profilePath(username))
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	err := models.UnfollowAuthor(user, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFoundPage(c)
		return
	}
	if err != nil {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, profilePath(username))
}
