package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"quillblog/internal/logger"
	"quillblog/internal/middleware"
	"quillblog/internal/services"
	"quillblog/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Create adds a comment from the logged-in user. Routed behind AuthRequired.
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := utils.ParseID(c.Param("post_id"))
	if !ok {
		NotFound(c)
		return
	}
	postPath := fmt.Sprintf("/post/%d", postID)

	user, ok := middleware.CurrentIdentity(c).User()
	if !ok {
		redirectWithFlash(c, "/login", "Please log in to comment.")
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, postPath, "Your comment was empty.")
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), postID, user, form.Text)
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, "That post does not exist.")
		return
	case errors.Is(err, services.ErrEmptyComment):
		redirectWithFlash(c, postPath, "Your comment was empty.")
		return
	case err != nil:
		logger.Errorf("comment on post %d: %v", postID, err)
		InternalError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s#comment-%d", postPath, comment.ID))
}
