// internal/handlers/shoe.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soleshelf/inventory-backend/internal/services"
	"github.com/soleshelf/inventory-backend/internal/utils"
)

type ShoeHandler struct {
	shoeService    *services.ShoeService
	storageService *services.StorageService
}

func NewShoeHandler(shoeService *services.ShoeService, storageService *services.StorageService) *ShoeHandler {
	return &ShoeHandler{
		shoeService:    shoeService,
		storageService: storageService,
	}
}

// GET /shoes
func (h *ShoeHandler) GetShoes(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	brand := c.Query("brand")
	search := c.Query("search")

	shoes, err := h.shoeService.ListShoes(brand, search, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"shoes": shoes,
		"count": len(shoes),
	})
}

// GET /shoes/:id
func (h *ShoeHandler) GetShoe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	shoe, err := h.shoeService.GetShoe(id)
	if err != nil {
		if errors.Is(err, services.ErrShoeNotFound) {
			utils.NotFoundResponse(c, "Shoe not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"shoe": shoe,
	})
}

// POST /shoes
func (h *ShoeHandler) CreateShoe(c *gin.Context) {
	var req services.CreateShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	shoe, err := h.shoeService.CreateShoe(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateShoe) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Shoe created successfully",
		"shoe":    shoe,
	})
}

// PUT /shoes/:id
func (h *ShoeHandler) UpdateShoe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	// A payload carrying a different identity than the path is treated as
	// addressing a record that does not exist.
	if req.ID != 0 && req.ID != id {
		utils.NotFoundResponse(c, "Shoe not found")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	shoe, err := h.shoeService.UpdateShoe(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrShoeNotFound) {
			utils.NotFoundResponse(c, "Shoe not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Shoe updated successfully",
		"shoe":    shoe,
	})
}

// DELETE /shoes/:id
func (h *ShoeHandler) DeleteShoe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	affected, err := h.shoeService.DeleteShoe(id)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	if !affected {
		utils.NotFoundResponse(c, "Shoe not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Shoe deleted successfully",
	})
}

// POST /shoes/:id/color
func (h *ShoeHandler) ChangeColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		ColorName string `json:"color_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	currentColor, err := h.shoeService.ChangeColor(id, req.ColorName)
	if err != nil {
		if errors.Is(err, services.ErrShoeNotFound) {
			utils.NotFoundResponse(c, "Shoe not found")
			return
		}
		if errors.Is(err, services.ErrColorNotAvailable) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       "Color changed successfully",
		"current_color": currentColor,
	})
}

// GET /shoes/:id/colors
func (h *ShoeHandler) GetAvailableColors(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	colors, err := h.shoeService.GetAvailableColors(id)
	if err != nil {
		if errors.Is(err, services.ErrShoeNotFound) {
			utils.NotFoundResponse(c, "Shoe not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"available_colors": colors,
	})
}

// POST /shoes/upload-image
func (h *ShoeHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image uploaded", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read uploaded image", nil)
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	result, err := h.storageService.UploadFile(file, fileHeader, h.storageService.ShoeImageUploadOptions())
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Image uploaded successfully",
		"image":   result,
	})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, "Invalid ID", nil)
		return 0, false
	}
	return uint(id), true
}
