package v1

import (
	"panduan-karier/internal/config"
	"panduan-karier/internal/database"
	"panduan-karier/internal/delivery/http/handler"
	"panduan-karier/internal/delivery/http/middleware"
	"panduan-karier/internal/infrastructure/cache"
	"panduan-karier/internal/pkg/jwt"
	"panduan-karier/internal/repository"
	"panduan-karier/internal/usecase"
	ucauth "panduan-karier/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	catalogRepo := repository.NewPostgresCatalogRepository(db)
	feedbackRepo := repository.NewPostgresFeedbackRepository(db)

	reportUC := usecase.NewReportUsecase(catalogRepo, redis)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo)
	authUC := ucauth.NewService(cfg.Admin, jwtSvc)

	questionHandler := handler.NewQuestionHandler()
	categoryHandler := handler.NewCategoryHandler()
	reportHandler := handler.NewReportHandler(reportUC)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUC)
	authHandler := handler.NewAuthHandler(authUC)

	questionHandler.RegisterRoutes(r)
	categoryHandler.RegisterRoutes(r)
	reportHandler.RegisterRoutes(r)
	feedbackHandler.RegisterRoutes(r)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())
	feedbackHandler.RegisterProtectedRoutes(protected)
}
