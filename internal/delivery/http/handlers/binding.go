package handlers

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/resp"
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var jsonFieldNames sync.Once

// useJSONFieldNames makes binding errors name fields the way clients send them.
func useJSONFieldNames() {
	jsonFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes the body into req. A body that fails binding rules is
// answered like a domain validation error; one that is not JSON gets a plain 400.
func (h *ApplicationHandler) bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		resp.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	verr := &domain.ValidationError{}
	for _, fe := range verrs {
		verr.Add(fieldPath(fe.Namespace()), fieldMessage(fe.Tag()))
	}
	h.writeError(c, verr)
	return false
}

// fieldPath drops the request type from a namespace such as
// "SubmitApplicationRequest.merchantData.email".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func fieldMessage(tag string) string {
	if tag == "required" {
		return "is required"
	}
	return "is invalid"
}
