// internal/handlers/variation.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/soleshelf/inventory-backend/internal/services"
	"github.com/soleshelf/inventory-backend/internal/utils"
)

type VariationHandler struct {
	shoeService *services.ShoeService
}

func NewVariationHandler(shoeService *services.ShoeService) *VariationHandler {
	return &VariationHandler{
		shoeService: shoeService,
	}
}

// GET /shoes/:id/variations
func (h *VariationHandler) GetVariations(c *gin.Context) {
	shoeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variations, err := h.shoeService.ListVariations(shoeID)
	if err != nil {
		if errors.Is(err, services.ErrShoeNotFound) {
			utils.NotFoundResponse(c, "Shoe not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"variations": variations,
	})
}

// POST /shoes/:id/variations
func (h *VariationHandler) CreateVariation(c *gin.Context) {
	shoeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	variation, err := h.shoeService.CreateVariation(shoeID, &req)
	if err != nil {
		if errors.Is(err, services.ErrShoeNotFound) {
			utils.NotFoundResponse(c, "Shoe not found")
			return
		}
		if errors.Is(err, services.ErrDuplicateColor) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   "Variation created successfully",
		"variation": variation,
	})
}

// GET /variations/:id
func (h *VariationHandler) GetVariation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variation, err := h.shoeService.GetVariation(id)
	if err != nil {
		if errors.Is(err, services.ErrVariationNotFound) {
			utils.NotFoundResponse(c, "Variation not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"variation": variation,
	})
}

// PUT /variations/:id
func (h *VariationHandler) UpdateVariation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	variation, err := h.shoeService.UpdateVariation(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrVariationNotFound) {
			utils.NotFoundResponse(c, "Variation not found")
			return
		}
		if errors.Is(err, services.ErrDuplicateColor) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Variation updated successfully",
		"variation": variation,
	})
}

// DELETE /variations/:id
func (h *VariationHandler) DeleteVariation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.shoeService.DeleteVariation(id); err != nil {
		if errors.Is(err, services.ErrVariationNotFound) {
			utils.NotFoundResponse(c, "Variation not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Variation deleted successfully",
	})
}
