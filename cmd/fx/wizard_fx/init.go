package wizard_fx

import (
	"go.uber.org/fx"

	"tradehub/internal/services"
)

var Module = fx.Provide(
	services.NewWizardSessionStore,
	services.NewWizardService)
