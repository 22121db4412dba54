package api

import (
	"context"
	"net/http"
	"os"

	categoryHandlers "github.com/r8estate/platform/category/handlers"
	claimHandlers "github.com/r8estate/platform/claim/handlers"
	companyHandlers "github.com/r8estate/platform/company/handlers"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/logger"
	reportHandlers "github.com/r8estate/platform/report/handlers"
	reviewHandlers "github.com/r8estate/platform/review/handlers"
	userHandlers "github.com/r8estate/platform/user/handlers"

	"github.com/gin-gonic/gin"
)

// API constructs the platform api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build mounts all routes with the common middlewares and returns the
// http.Handler to serve.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	claims := claimHandlers.NewClaims(backgroundContext, loggerProvider, a.conn)
	users := userHandlers.NewUsers(backgroundContext, loggerProvider, a.conn)
	companies := companyHandlers.NewCompanies(loggerProvider, a.conn)
	categories := categoryHandlers.NewCategories(loggerProvider, a.conn)
	reviews := reviewHandlers.NewReviews(loggerProvider, a.conn)
	reports := reportHandlers.NewReports(loggerProvider, a.conn)

	authRequired := mid.AuthRequired(a.conn)
	adminRequired := mid.AdminRequired(a.conn)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, gin.H{"status": "ok"}, http.StatusOK)
	})

	apiGroup := web.NewGroup(app, "/api/v1")
	{
		claimsGroup := apiGroup.NewSubgroup("/claims")
		{
			claimsGroup.Post("/process", claims.Process)
			claimsGroup.Post("/process-non-domain", claims.ProcessNonDomain)
			claimsGroup.Patch("/:claimID/status", claims.UpdateStatus,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("claimID"))
		}

		emailsGroup := apiGroup.NewSubgroup("/emails")
		{
			emailsGroup.Post("/verification", users.SendVerificationEmail)
			emailsGroup.Post("/otp", users.SendOTPEmail, authRequired)
		}

		usersGroup := apiGroup.NewSubgroup("/users")
		{
			usersGroup.Post("/change-email", users.ChangeEmail, authRequired)
			usersGroup.Post("/verified", users.CreateVerifiedUser)
			usersGroup.Post("/:userID/email-verified", users.MarkEmailVerified,
				mid.ValidatePathParamNotEmpty("userID"))
			usersGroup.Post("", users.CreateUser, authRequired, adminRequired)
			usersGroup.Delete("/:userID", users.DeleteUser,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("userID"))
			usersGroup.Patch("/:userID/password", users.ChangeUserPassword,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("userID"))
		}

		companiesGroup := apiGroup.NewSubgroup("/companies")
		{
			companiesGroup.Get("", companies.List)
			companiesGroup.Get("/:companyID", companies.Get,
				mid.ValidatePathParamNotEmpty("companyID"))
			companiesGroup.Get("/:companyID/reviews", reviews.ListByCompany,
				mid.ValidatePathParamNotEmpty("companyID"))
			companiesGroup.Post("", companies.Create, authRequired, adminRequired)
			companiesGroup.Patch("/:companyID", companies.Update,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("companyID"))
			companiesGroup.Delete("/:companyID", companies.Delete,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("companyID"))
		}

		categoriesGroup := apiGroup.NewSubgroup("/categories")
		{
			categoriesGroup.Get("", categories.List)
			categoriesGroup.Post("", categories.Create, authRequired, adminRequired)
			categoriesGroup.Delete("/:categoryID", categories.Delete,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("categoryID"))
		}

		reviewsGroup := apiGroup.NewSubgroup("/reviews")
		{
			reviewsGroup.Post("", reviews.Create, authRequired)
			reviewsGroup.Post("/:reviewID/reply", reviews.Reply,
				authRequired, mid.ValidatePathParamNotEmpty("reviewID"))
			reviewsGroup.Patch("/:reviewID/status", reviews.SetStatus,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("reviewID"))
			reviewsGroup.Delete("/:reviewID", reviews.Delete,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("reviewID"))
		}

		reportsGroup := apiGroup.NewSubgroup("/reports")
		{
			reportsGroup.Post("", reports.Create, authRequired)
			reportsGroup.Get("", reports.List, authRequired, adminRequired)
			reportsGroup.Patch("/:reportID", reports.Resolve,
				authRequired, adminRequired, mid.ValidatePathParamNotEmpty("reportID"))
		}
	}

	return app
}
