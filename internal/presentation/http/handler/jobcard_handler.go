package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// JobCardHandler handles the lab-order screen
type JobCardHandler struct {
	jobCards *service.JobCardService
}

// NewJobCardHandler creates a new job card handler
func NewJobCardHandler(jobCards *service.JobCardService) *JobCardHandler {
	return &JobCardHandler{jobCards: jobCards}
}

func (h *JobCardHandler) List(c *gin.Context) {
	cards, err := h.jobCards.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job cards retrieved", cards)
}

func (h *JobCardHandler) Get(c *gin.Context) {
	card, err := h.jobCards.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job card retrieved", card)
}

func (h *JobCardHandler) Create(c *gin.Context) {
	var card entity.JobCard
	if err := c.ShouldBindJSON(&card); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.jobCards.Create(c.Request.Context(), &card)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Job card created", created)
}

func (h *JobCardHandler) Update(c *gin.Context) {
	var card entity.JobCard
	if err := c.ShouldBindJSON(&card); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.jobCards.Update(c.Request.Context(), c.Param("id"), &card)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job card updated", updated)
}

// Advance moves a job card to the next status in the sequence
func (h *JobCardHandler) Advance(c *gin.Context) {
	updated, err := h.jobCards.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job card advanced", updated)
}

func (h *JobCardHandler) Delete(c *gin.Context) {
	if err := h.jobCards.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
