package handlers

import (
	"blog/db"
	"blog/models"
	"blog/storage"
	"blog/utils"
	"bytes"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostForm struct {
	Text    string `form:"text" binding:"required"`
	GroupID uint64 `form:"group"`
}

func PostDetail(c *gin.Context) {
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
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		ServerError(c)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"post":     post,
		"comments": comments,
	})
}

func PostCreateForm(c *gin.Context, user *models.User) {
	renderPostForm(c, nil, "")
}

func PostCreate(c *gin.Context, user *models.User) {
	form := PostForm{}
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		renderPostForm(c, nil, "Text is required")
		return
	}
	post := models.Post{
		Text:     form.Text,
		AuthorID: user.ID,
	}
	if form.GroupID != 0 {
		post.GroupID = &form.GroupID
	}
	if file, err := c.FormFile("image"); err == nil && file != nil {
		post.ImagePath, post.ThumbPath, err = saveImage(file)
		if err != nil {
			renderPostForm(c, nil, "Could not read the image")
			return
		}
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, profilePath(user.Username))
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, redirected := postForEdit(c, user)
	if redirected {
		return
	}
	renderPostForm(c, &post, "")
}

func PostEdit(c *gin.Context, user *models.User) {
	post, redirected := postForEdit(c, user)
	if redirected {
		return
	}
	form := PostForm{}
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		renderPostForm(c, &post, "Text is required")
		return
	}
	post.Text = form.Text
	if form.GroupID != 0 {
		post.GroupID = &form.GroupID
	} else {
		post.GroupID = nil
	}
	if file, err := c.FormFile("image"); err == nil && file != nil {
		imagePath, thumbPath, err := saveImage(file)
		if err != nil {
			renderPostForm(c, &post, "Could not read the image")
			return
		}
		post.ImagePath = imagePath
		post.ThumbPath = thumbPath
	}
	if err := db.Instance.Omit(clause.Associations).Save(&post).Error; err != nil {
		ServerError(c)
		return
	}
	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// postForEdit loads the post and enforces the author-only rule: anyone else
// is sent back to the post page, not shown an error.
func postForEdit(c *gin.Context, user *models.User) (post models.Post, redirected bool) {
	id, err := idParam(c)
	if err != nil {
		NotFoundPage(c)
		return post, true
	}
	post, err = models.PostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFoundPage(c)
		return post, true
	}
	if err != nil {
		ServerError(c)
		return post, true
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return post, true
	}
	return post, false
}

func renderPostForm(c *gin.Context, post *models.Post, formError string) {
	groups, err := models.GroupList()
	if err != nil {
		ServerError(c)
		return
	}
	c.HTML(http.StatusOK, "create_post.tmpl", gin.H{
		"post":   post,
		"groups": groups,
		"isEdit": post != nil,
		"error":  formError,
	})
}

// saveImage stores the uploaded image under the posts/ media prefix and
// generates a JPEG thumbnail next to it.
func saveImage(file *multipart.FileHeader) (imagePath, thumbPath string, err error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return "", "", errors.New("unsupported image type")
	}
	reader, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer reader.Close()

	name := uuid.NewString()
	imagePath = "posts/" + name + ext
	if _, err = storage.Media().Save(imagePath, reader); err != nil {
		return "", "", err
	}
	var buf, thumb bytes.Buffer
	if _, err := storage.Media().Load(imagePath, &buf); err != nil {
		log.Printf("Cannot re-read uploaded image %s: %v", imagePath, err)
		return imagePath, "", nil
	}
	if _, err := utils.CreateThumb(1280, &buf, &thumb); err != nil {
		log.Printf("CreateThumb error for %s: %v", imagePath, err)
		return imagePath, "", nil
	}
	thumbPath = "posts/thumb/" + name + ".jpg"
	if _, err := storage.Media().Save(thumbPath, &thumb); err != nil {
		log.Printf("Cannot save thumbnail %s: %v", thumbPath, err)
		return imagePath, "", nil
	}
	return imagePath, thumbPath, nil
}
