// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/credential-forms/backend/config"
	"github.com/credential-forms/backend/internal/application/usecase/forms"
	"github.com/credential-forms/backend/internal/infra/server/router"
	"github.com/credential-forms/backend/internal/integration/adapters"
	"github.com/credential-forms/backend/internal/integration/entrypoint/controller"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config) (*Injector, error) {
	// Create adapters/services
	formValidator, err := adapters.NewFormValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create form validator: %w", err)
	}

	// Create form use cases
	validateSignupUseCase := forms.NewValidateSignupUseCase(formValidator)
	validateLoginUseCase := forms.NewValidateLoginUseCase(formValidator)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		return formValidator != nil
	})

	formsController := controller.NewFormsController(
		validateSignupUseCase,
		validateLoginUseCase,
	)

	// Create router
	r := router.NewRouter(healthController, formsController)

	return &Injector{
		Config: cfg,
		Router: r,
	}, nil
}
