package controllers

import (
	"github.com/gin-gonic/gin"

	"tradehub/internal/services"
	"tradehub/pkg/utils"
)

// ReferenceController serves the read-only lookup data the wizard UI needs:
// trade categories, states and their LGAs.
type ReferenceController struct {
	categoryService services.CategoryServiceInterface
	stateService    services.StateServiceInterface
}

func NewReferenceController(categoryService services.CategoryServiceInterface, stateService services.StateServiceInterface) *ReferenceController {
	return &ReferenceController{
		categoryService: categoryService,
		stateService:    stateService,
	}
}

// GetCategories godoc
// @Summary List trade categories
// @Description Fetch all active trade categories
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (r *ReferenceController) GetCategories(c *gin.Context) {
	categories, err := r.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// GetStates godoc
// @Summary List states
// @Description Fetch all states
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /states [get]
func (r *ReferenceController) GetStates(c *gin.Context) {
	states, err := r.stateService.ListStates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, states, "States fetched successfully")
}

// GetLGAs godoc
// @Summary List LGAs for a state
// @Description Fetch the local government areas of one state
// @Tags Reference
// @Produce json
// @Param stateId path string true "State id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /states/{stateId}/lgas [get]
func (r *ReferenceController) GetLGAs(c *gin.Context) {
	lgas, err := r.stateService.ListLGAs(c.Request.Context(), c.Param("stateId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, lgas, "LGAs fetched successfully")
}
