package mid

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/user/domain"
)

// Auth errors
var (
	ErrNoAuthHeader      = errors.New("no authorization header found")
	ErrInvalidAuthHeader = errors.New("invalid authorization header found")
	ErrForbidden         = errors.New("forbidden operation")
	ErrUnauthorized      = errors.New("unauthorized operation")
)

const userCollection = "users"

// AuthRequired middleware that auth requests coming from client app
func AuthRequired(conn *connection.Connection) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			idToken, err := bearerToken(ctx)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			token, err := conn.Auth(ctx).VerifyIDToken(ctx, idToken)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			claims := token.Claims

			ctx.Set("claims", claims)
			ctx.Set("uid", token.UID)

			// Set email in context
			email, ok := claims["email"]
			if !ok {
				return web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
			}

			emailStr := email.(string)
			ctx.Set("email", strings.ToLower(emailStr))

			// Set name in context
			if name, ok := claims["name"]; ok {
				ctx.Set("name", name.(string))
			}

			return handler(ctx)
		}

		return h
	}

	return f
}

// AdminRequired middleware gates admin operations on the role field of the
// caller's user document. It must be mounted after AuthRequired.
func AdminRequired(conn *connection.Connection) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			uid := ctx.GetString("uid")
			if uid == "" {
				return web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
			}

			snap, err := conn.Firestore(ctx).Collection(userCollection).Doc(uid).Get(ctx)
			if err != nil {
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			var u domain.User
			if err := snap.DataTo(&u); err != nil {
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			if u.Role != domain.RoleAdmin {
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}

func bearerToken(ctx *gin.Context) (string, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAuthHeader
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrInvalidAuthHeader
	}

	return strings.Split(authHeader, " ")[1], nil
}
