package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tradehub/cmd/fx/account_fx"
	"tradehub/cmd/fx/controllers_fx"
	"tradehub/cmd/fx/db_fx"
	"tradehub/cmd/fx/job_fx"
	"tradehub/cmd/fx/logger_fx"
	"tradehub/cmd/fx/question_fx"
	"tradehub/cmd/fx/reference_fx"
	"tradehub/cmd/fx/wizard_fx"
	"tradehub/internal/api/controllers"
	"tradehub/internal/models/db_models"
	"tradehub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		reference_fx.Module,
		question_fx.Module,
		job_fx.Module,
		wizard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	referenceController *controllers.ReferenceController,
	questionController *controllers.QuestionController,
	wizardController *controllers.WizardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, referenceController, questionController, wizardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	referenceController *controllers.ReferenceController,
	questionController *controllers.QuestionController,
	wizardController *controllers.WizardController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/signup", accountController.SignUp)
	accountGroup.POST("/login", accountController.Login)

	r.GET("/categories", referenceController.GetCategories)
	r.GET("/categories/:slug/questions", questionController.GetQuestions)
	r.GET("/states", referenceController.GetStates)
	r.GET("/states/:stateId/lgas", referenceController.GetLGAs)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleAdmin))
	adminGroup.PUT("/categories/:slug/questions", questionController.ReplaceQuestions)

	// The wizard works for guests too; auth only changes the step count.
	wizardGroup := r.Group("/wizard")
	wizardGroup.Use(middleware.OptionalJWTAuthMiddleware())
	wizardGroup.POST("/start", wizardController.Start)
	wizardGroup.GET("/:sessionId", wizardController.GetState)
	wizardGroup.POST("/:sessionId/category", wizardController.SelectCategory)
	wizardGroup.POST("/:sessionId/answers", wizardController.ApplyAnswer)
	wizardGroup.POST("/:sessionId/questions/next", wizardController.NextQuestion)
	wizardGroup.POST("/:sessionId/questions/previous", wizardController.PreviousQuestion)
	wizardGroup.PATCH("/:sessionId/form", wizardController.UpdateForm)
	wizardGroup.POST("/:sessionId/next", wizardController.NextStep)
	wizardGroup.POST("/:sessionId/previous", wizardController.PreviousStep)
	wizardGroup.POST("/:sessionId/account-choice", wizardController.AccountChoice)
	wizardGroup.POST("/:sessionId/create-account", wizardController.CreateAccount)
	wizardGroup.POST("/:sessionId/complete-signin", middleware.JWTAuthMiddleware(), wizardController.CompleteSignIn)
}
