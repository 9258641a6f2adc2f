package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type RegisterForm struct {
	Name     string `form:"name" binding:"required,notblank"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=7,max=25"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type PostForm struct {
	Title    string `form:"title" binding:"required,notblank"`
	Subtitle string `form:"subtitle" binding:"required,notblank"`
	Genre    string `form:"genre" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required,notblank"`
}

type CommentForm struct {
	Text string `form:"text" binding:"required,notblank"`
}

// FieldErrors maps form field names to the message shown next to them.
type FieldErrors map[string]string

func init() {
	// report form names (img_url) instead of struct names (ImgURL)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

// fieldErrors turns a ShouldBind error into per-field messages. Errors that
// are not validation failures land under the empty key.
func fieldErrors(err error) FieldErrors {
	out := FieldErrors{}
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out[""] = "The form could not be read."
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		if fe.Field() == "password" {
			return "Please enter a password"
		}
		return "This field is required."
	case "email":
		return "Please enter a valid email address."
	case "url":
		return "Please enter a valid URL."
	case "min", "max":
		if fe.Field() == "password" {
			return "Please choose a password between 7-25 characters"
		}
		return "This value has the wrong length."
	}
	return "This value is not valid."
}
