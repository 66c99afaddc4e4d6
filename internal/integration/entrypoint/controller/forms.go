// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credential-forms/backend/internal/application/usecase/forms"
	domainerror "github.com/credential-forms/backend/internal/domain/error"
	"github.com/credential-forms/backend/internal/integration/entrypoint/dto"
)

// FormsController handles credential form validation endpoints.
type FormsController struct {
	validateSignupUseCase *forms.ValidateSignupUseCase
	validateLoginUseCase  *forms.ValidateLoginUseCase
}

// NewFormsController creates a new forms controller instance.
func NewFormsController(
	validateSignupUseCase *forms.ValidateSignupUseCase,
	validateLoginUseCase *forms.ValidateLoginUseCase,
) *FormsController {
	return &FormsController{
		validateSignupUseCase: validateSignupUseCase,
		validateLoginUseCase:  validateLoginUseCase,
	}
}

// ValidateSignup handles POST /forms/signup/validate requests.
func (c *FormsController) ValidateSignup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.malformed(ctx)
		return
	}

	output, err := c.validateSignupUseCase.Execute(ctx.Request.Context(), forms.ValidateSignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleFormError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FormAcceptedResponse{
		Valid: true,
		Form:  "signup",
		Email: output.Signup.Email,
	})
}

// ValidateLogin handles POST /forms/login/validate requests.
func (c *FormsController) ValidateLogin(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.malformed(ctx)
		return
	}

	output, err := c.validateLoginUseCase.Execute(ctx.Request.Context(), forms.ValidateLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleFormError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FormAcceptedResponse{
		Valid: true,
		Form:  "login",
		Email: output.Login.Email,
	})
}

func (c *FormsController) malformed(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeMalformedForm),
	})
}

// handleFormError maps form errors to HTTP responses.
func (c *FormsController) handleFormError(ctx *gin.Context, err error) {
	var validationErrs *domainerror.ValidationErrors
	if errors.As(err, &validationErrs) {
		ctx.JSON(http.StatusUnprocessableEntity, toValidationErrorResponse(validationErrs))
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func toValidationErrorResponse(errs *domainerror.ValidationErrors) dto.ValidationErrorResponse {
	codes := make(map[string][]string)
	for _, field := range errs.Fields() {
		for _, fe := range errs.Get(field) {
			codes[field] = append(codes[field], string(fe.Code))
		}
	}
	return dto.ValidationErrorResponse{
		Error:  domainerror.ErrValidationFailed.Error(),
		Code:   string(domainerror.ErrCodeValidationFailed),
		Fields: errs.Messages(),
		Codes:  codes,
	}
}
