package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// maxLogoSize caps logo uploads at 2 MB.
const maxLogoSize = 2 << 20

// SettingsHandler handles the invoice-settings screen
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved", settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings entity.InvoiceSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.settings.Update(c.Request.Context(), &settings)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated", updated)
}

// UploadLogo forwards the logo file to the store API
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		response.BadRequest(c, "Logo file is required")
		return
	}
	defer file.Close()

	if header.Size > maxLogoSize {
		response.BadRequest(c, "Logo file exceeds 2 MB")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxLogoSize))
	if err != nil {
		response.Error(c, err)
		return
	}

	url, err := h.settings.UploadLogo(c.Request.Context(), header.Filename, data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logo uploaded", gin.H{"logo": url})
}
