package mid

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/r8estate/platform/framework/web"
)

func ValidatePathParamNotEmpty(paramName string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if paramValue := ctx.Param(paramName); paramValue == "" {
				return web.NewRequestError(errors.New("error: "+paramName+" cannot be empty"), http.StatusBadRequest)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}

// BindingError turns a gin binding failure into an invalid-argument request
// error, flattening validator field errors into a readable message.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fe.Field() + " failed on " + fe.Tag()
		}

		return web.NewRequestError(errors.New("invalid request: "+strings.Join(fields, "; ")), http.StatusBadRequest)
	}

	return web.NewRequestError(err, http.StatusBadRequest)
}
