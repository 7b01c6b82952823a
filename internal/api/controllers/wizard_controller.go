package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tradehub/internal/models/request_models"
	"tradehub/internal/services"
	"tradehub/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

// posterID reads the authenticated account from the gin context. The wizard
// routes use optional auth, so a missing identity just means a guest flow.
func posterID(c *gin.Context) *uuid.UUID {
	raw := c.GetString("user_id")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// Start godoc
// @Summary Start a posting session
// @Description Open a job-posting wizard session. Guests get five steps, signed-in posters four.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.StartWizardRequest true "Start payload"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/start [post]
func (w *WizardController) Start(c *gin.Context) {
	var req request_models.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := w.wizardService.Start(c.Request.Context(), req, posterID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Wizard started")
}

// GetState godoc
// @Summary Get the wizard state
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /wizard/{sessionId} [get]
func (w *WizardController) GetState(c *gin.Context) {
	state, err := w.wizardService.GetState(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Wizard state fetched")
}

// SelectCategory godoc
// @Summary Select the trade category
// @Description Pick a category and resolve its question set. Changing category resets answers.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body request_models.SelectCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/category [post]
func (w *WizardController) SelectCategory(c *gin.Context) {
	var req request_models.SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := w.wizardService.SelectCategory(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Category selected")
}

// ApplyAnswer godoc
// @Summary Answer a question
// @Description Apply one answer; visibility is recomputed and the question position reclamped in the same call.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body request_models.ApplyAnswerRequest true "Answer payload"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/answers [post]
func (w *WizardController) ApplyAnswer(c *gin.Context) {
	var req request_models.ApplyAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := w.wizardService.ApplyAnswer(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Answer applied")
}

// NextQuestion godoc
// @Summary Move to the next question
// @Description Validates the current question first; from the last visible question the wizard step advances instead.
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/questions/next [post]
func (w *WizardController) NextQuestion(c *gin.Context) {
	state, err := w.wizardService.NextQuestion(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "OK")
}

// PreviousQuestion godoc
// @Summary Move to the previous question
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/questions/previous [post]
func (w *WizardController) PreviousQuestion(c *gin.Context) {
	state, err := w.wizardService.PreviousQuestion(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "OK")
}

// UpdateForm godoc
// @Summary Patch the wizard form fields
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body request_models.UpdateFormRequest true "Form patch"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/form [patch]
func (w *WizardController) UpdateForm(c *gin.Context) {
	var req request_models.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := w.wizardService.UpdateForm(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Form updated")
}

// NextStep godoc
// @Summary Advance the wizard step
// @Description Runs the current step's gate. From the contact step a signed-in poster submits the job; a guest is asked to create an account or sign in.
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /wizard/{sessionId}/next [post]
func (w *WizardController) NextStep(c *gin.Context) {
	state, err := w.wizardService.NextStep(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "OK")
}

// PreviousStep godoc
// @Summary Go back one wizard step
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/previous [post]
func (w *WizardController) PreviousStep(c *gin.Context) {
	state, err := w.wizardService.PreviousStep(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "OK")
}

// AccountChoice godoc
// @Summary Choose how to finish as a guest
// @Description Pick create-account (go to step 5) or sign-in (suspend until login completes).
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body request_models.AccountChoiceRequest true "Choice payload"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/account-choice [post]
func (w *WizardController) AccountChoice(c *gin.Context) {
	var req request_models.AccountChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := w.wizardService.AccountChoice(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "OK")
}

// CreateAccount godoc
// @Summary Create an account and submit (step 5)
// @Tags Wizard
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param request body request_models.CreateAccountStepRequest true "Account payload"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/{sessionId}/create-account [post]
func (w *WizardController) CreateAccount(c *gin.Context) {
	var req request_models.CreateAccountStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := w.wizardService.CreateAccountAndSubmit(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Job posted")
}

// CompleteSignIn godoc
// @Summary Resume a suspended wizard after sign-in
// @Description Carries the login success signal into the wizard, which then submits immediately.
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wizard/{sessionId}/complete-signin [post]
func (w *WizardController) CompleteSignIn(c *gin.Context) {
	id := posterID(c)
	if id == nil {
		utils.HandleServiceError(c, utils.ErrNotAuthenticated)
		return
	}

	state, err := w.wizardService.CompleteSignIn(c.Request.Context(), c.Param("sessionId"), *id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Job posted")
}
