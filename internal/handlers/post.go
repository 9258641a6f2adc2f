package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"quillblog/internal/logger"
	"quillblog/internal/middleware"
	"quillblog/internal/models"
	"quillblog/internal/services"
	"quillblog/internal/session"
	"quillblog/internal/utils"

	"github.com/gin-gonic/gin"
)

const msgTitleTaken = "A post with this title already exists. Pick another title."

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// commentView is a comment prepared for the post page.
type commentView struct {
	ID         uint
	HTML       template.HTML
	AuthorName string
}

func (h *PostHandler) Home(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		logger.Errorf("list posts: %v", err)
		InternalError(c)
		return
	}

	Render(c, http.StatusOK, "home.html", gin.H{
		"Posts": posts,
	})
}

func (h *PostHandler) Show(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("post_id"))
	if !ok {
		NotFound(c)
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		RenderError(c, http.StatusNotFound, "That post does not exist.")
		return
	}
	if err != nil {
		logger.Errorf("get post %d: %v", id, err)
		InternalError(c)
		return
	}

	comments := make([]commentView, len(post.Comments))
	for i, com := range post.Comments {
		var author string
		if com.Author != nil {
			author = com.Author.Name
		}
		comments[i] = commentView{
			ID:         com.ID,
			HTML:       utils.RenderMarkdown(com.Text),
			AuthorName: author,
		}
	}

	Render(c, http.StatusOK, "post/show.html", gin.H{
		"Title":    post.Title,
		"Post":     post,
		"Body":     utils.RenderRichText(post.Body),
		"Comments": comments,
		"Errors":   FieldErrors{},
	})
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "post/create.html", gin.H{
		"Title":  "New Post",
		"Form":   PostForm{Genre: string(models.GenreTech)},
		"Errors": FieldErrors{},
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	var form PostForm
	errs := FieldErrors{}
	if err := c.ShouldBind(&form); err != nil {
		errs = fieldErrors(err)
	}
	genre, ok := models.ParseGenre(form.Genre)
	if !ok {
		if _, missing := errs["genre"]; !missing {
			errs["genre"] = "Please choose one of the listed genres."
		}
	}
	if len(errs) > 0 {
		h.renderCreate(c, http.StatusBadRequest, form, errs)
		return
	}

	author, _ := middleware.CurrentIdentity(c).User()
	post, err := h.posts.Create(c.Request.Context(), services.PostInput{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
		Genre:    genre,
	}, author)
	if errors.Is(err, services.ErrDuplicateTitle) {
		session.AddFlash(c, msgTitleTaken)
		h.renderCreate(c, http.StatusConflict, form, FieldErrors{"title": "This title is already used."})
		return
	}
	if err != nil {
		logger.Errorf("create post %q: %v", form.Title, err)
		InternalError(c)
		return
	}

	logger.Infof("post %d created by user %d", post.ID, author.ID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

func (h *PostHandler) renderCreate(c *gin.Context, code int, form PostForm, errs FieldErrors) {
	Render(c, code, "post/create.html", gin.H{
		"Title":  "New Post",
		"Form":   form,
		"Errors": errs,
	})
}

// Delete removes a post. Deleting an id that is already gone is a no-op.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("post_id"))
	if !ok {
		NotFound(c)
		return
	}

	deleted, err := h.posts.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Errorf("delete post %d: %v", id, err)
		InternalError(c)
		return
	}
	if deleted {
		logger.Infof("post %d deleted", id)
		session.AddFlash(c, "Post deleted.")
	}
	c.Redirect(http.StatusFound, "/")
}

// Category lists the posts of one genre under its display name and hero image.
func (h *PostHandler) Category(c *gin.Context) {
	genre, ok := models.ParseGenre(c.Param("category"))
	if !ok {
		RenderError(c, http.StatusNotFound, "There is no such category.")
		return
	}

	posts, err := h.posts.ListByGenre(c.Request.Context(), genre)
	if err != nil {
		logger.Errorf("list %s posts: %v", genre, err)
		InternalError(c)
		return
	}

	Render(c, http.StatusOK, "post/category.html", gin.H{
		"Title":     genre.DisplayName(),
		"Category":  genre.DisplayName(),
		"HeroImage": genre.HeroImage(),
		"Genre":     genre,
		"Posts":     posts,
	})
}
