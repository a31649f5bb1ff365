package controllers

import (
	"classifieds/middleware"
	"classifieds/models"
	"classifieds/services"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdController struct {
	ads           *services.AdService
	export        *services.ExportService
	maxUploadSize int64
}

func NewAdController(ads *services.AdService, export *services.ExportService, maxUploadSize int64) *AdController {
	return &AdController{ads: ads, export: export, maxUploadSize: maxUploadSize}
}

// GetAll godoc
// @Summary Get all ads
// @Tags Ads
// @Produce json
// @Success 200 {object} models.AdsDto
// @Router /ads [get]
func (ctrl *AdController) GetAll(c *gin.Context) {
	ads, err := ctrl.ads.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// readProperties decodes the "properties" part of a create request. Clients
// send it either as a plain form field or as a JSON file part.
func readProperties(c *gin.Context) (models.CreateOrUpdateAdRequest, error) {
	var req models.CreateOrUpdateAdRequest

	raw := c.PostForm("properties")
	if raw == "" {
		fh, err := c.FormFile("properties")
		if err != nil {
			return req, errors.New("properties part is required")
		}
		f, err := fh.Open()
		if err != nil {
			return req, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return req, err
		}
		raw = string(data)
	}

	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return req, err
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, err
	}
	return req, nil
}

// Create godoc
// @Summary Create ad
// @Tags Ads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param properties formData string true "Ad properties as JSON"
// @Param image formData file true "Ad image"
// @Success 200 {object} models.AdDto
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /ads [post]
func (ctrl *AdController) Create(c *gin.Context) {
	req, err := readProperties(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid ad properties", err)
		return
	}

	image, ok := readImage(c, "image", ctrl.maxUploadSize)
	if !ok {
		return
	}

	ad, err := ctrl.ads.Create(c.Request.Context(), middleware.GetPrincipal(c), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

// Get godoc
// @Summary Get ad
// @Tags Ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} models.ExtendedAdDto
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id} [get]
func (ctrl *AdController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ad, err := ctrl.ads.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

// Delete godoc
// @Summary Delete ad
// @Tags Ads
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id} [delete]
func (ctrl *AdController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	ad, err := ctrl.ads.FindAdByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ctrl.ads.Delete(ctx, middleware.GetPrincipal(c), ad); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Update godoc
// @Summary Update ad
// @Tags Ads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ad ID"
// @Param request body models.CreateOrUpdateAdRequest true "Ad properties"
// @Success 200 {object} models.AdDto
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id} [patch]
func (ctrl *AdController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.CreateOrUpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	ad, err := ctrl.ads.Update(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

// GetMe godoc
// @Summary Get ads of the current user
// @Tags Ads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AdsDto
// @Failure 401 {object} models.ErrorResponse
// @Router /ads/me [get]
func (ctrl *AdController) GetMe(c *gin.Context) {
	ads, err := ctrl.ads.GetAuthorizedUserAds(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// ExportMe godoc
// @Summary Export ads of the current user as XLSX
// @Tags Ads
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} models.ErrorResponse
// @Router /ads/me/export [get]
func (ctrl *AdController) ExportMe(c *gin.Context) {
	f, err := ctrl.export.ExportUserAds(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="my-ads.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// UpdateImage godoc
// @Summary Replace ad image
// @Tags Ads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce octet-stream
// @Param id path int true "Ad ID"
// @Param image formData file true "New image"
// @Success 200 {file} file
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ads/{id}/image [patch]
func (ctrl *AdController) UpdateImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := ctrl.ads.FindAdByID(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	image, ok := readImage(c, "image", ctrl.maxUploadSize)
	if !ok {
		return
	}

	name, err := ctrl.ads.UpdateImage(ctx, middleware.GetPrincipal(c), id, image)
	if err != nil {
		respondError(c, err)
		return
	}
	writeImage(c, name, image.Bytes())
}

// GetImage godoc
// @Summary Get ad image
// @Tags Images
// @Produce octet-stream
// @Param fileName path string true "Image file name"
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse
// @Router /images/{fileName} [get]
func (ctrl *AdController) GetImage(c *gin.Context) {
	name := c.Param("fileName")
	data, err := ctrl.ads.GetImage(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	writeImage(c, name, data)
}
