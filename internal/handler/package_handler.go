package handler

import (
	"context"
	"net/http"

	"github.com/ShirinKhan1/system-design/internal/middleware"
	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/ShirinKhan1/system-design/internal/service"
	"github.com/gin-gonic/gin"
)

// PackageManager defines the operations used by PackageHandler.
type PackageManager interface {
	CreatePackage(ctx context.Context, cmd service.CreatePackageCommand) (*models.Package, error)
	ListPackages(ctx context.Context) ([]models.Package, error)
}

type PackageHandler struct {
	packages PackageManager
}

type CreatePackageRequest struct {
	UserID int64   `json:"user_id" validate:"required"`
	Height float64 `json:"height" validate:"required,gt=0"`
	Width  float64 `json:"width" validate:"required,gt=0"`
	Length float64 `json:"length" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

func NewPackageHandler(packages PackageManager) *PackageHandler {
	return &PackageHandler{packages: packages}
}

func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	pkg, err := h.packages.CreatePackage(c.Request.Context(), service.CreatePackageCommand{
		UserID: req.UserID,
		Height: req.Height,
		Width:  req.Width,
		Length: req.Length,
		Weight: req.Weight,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to create package")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.packages.ListPackages(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusServiceUnavailable, "Failed to list packages")
		return
	}
	if packages == nil {
		packages = []models.Package{}
	}
	c.JSON(http.StatusOK, packages)
}
