package handlers

import (
	"blog/auth"
	"blog/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Index(c *gin.Context) {
	page, err := models.GlobalFeed(pageParam(c))
	if err != nil {
		ServerError(c)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"page": page,
	})
}

func GroupPosts(c *gin.Context) {
	group, page, err := models.GroupFeed(c.Param("slug"), pageParam(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFoundPage(c)
		return
	}
	if err != nil {
		ServerError(c)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"group": group,
		"page":  page,
	})
}

func Profile(c *gin.Context) {
	author, page, err := models.AuthorFeed(c.Param("username"), pageParam(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFoundPage(c)
		return
	}
	if err != nil {
		ServerError(c)
		return
	}
	viewer := auth.LoadSession(c).User()
	following := viewer.ID != 0 && models.IsFollowing(viewer.ID, author.ID)
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"author":    author,
		"page":      page,
		"following": following,
	})
}

func FollowIndex(c *gin.Context, user *models.User) {
	page, err := models.FollowFeed(user.ID, pageParam(c))
	if err != nil {
		ServerError(c)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"page": page,
	})
}
