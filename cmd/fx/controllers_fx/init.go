package controllers_fx

import (
	"go.uber.org/fx"

	"tradehub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewReferenceController),
	fx.Provide(controllers.NewQuestionController),
	fx.Provide(controllers.NewWizardController))
