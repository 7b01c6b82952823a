package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/models/request_models"
	"tradehub/internal/services"
	"tradehub/pkg/utils"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// GetQuestions godoc
// @Summary Get a category's question set
// @Description Fetch the ordered posting questions of a trade category. An empty set is a valid result.
// @Tags Questions
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /categories/{slug}/questions [get]
func (q *QuestionController) GetQuestions(c *gin.Context) {
	set, err := q.questionService.ListForCategorySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, set, "Questions fetched successfully")
}

// ReplaceQuestions godoc
// @Summary Replace a category's question set
// @Description Swap the full question set of a category. Conditional rules may only reference earlier questions.
// @Tags Questions
// @Accept json
// @Produce json
// @Param slug path string true "Category slug"
// @Param request body request_models.ReplaceQuestionSetRequest true "Question set payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/categories/{slug}/questions [put]
func (q *QuestionController) ReplaceQuestions(c *gin.Context) {
	var req request_models.ReplaceQuestionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	set, err := q.questionService.ReplaceForCategorySlug(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, set, "Question set replaced successfully")
}
