package handlers

import (
	"blog/auth"
	"blog/models"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SignupRequest struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Password string `form:"password" binding:"required"`
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"next": c.Query("next"),
	})
}

func Login(c *gin.Context) {
	req := LoginRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"error": "Username and password are required",
			"next":  c.PostForm("next"),
		})
		return
	}
	user, err := models.UserLogin(req.Username, req.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"error": "Invalid username or password",
			"next":  c.PostForm("next"),
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	next := c.PostForm("next")
	// Only same-site return paths
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{})
}

func Signup(c *gin.Context) {
	req := SignupRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{
			"error": "Username and password are required",
		})
		return
	}
	user, err := models.UserCreate(req.Username, req.Name, req.Password)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{
			"error": "Username is already taken",
		})
		return
	}
	if err != nil {
		ServerError(c)
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}
