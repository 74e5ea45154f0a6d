package service

import (
	"context"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
)

// JobCardService fronts the lab-order endpoints and enforces the fixed
// status sequence client-side, so a regression to an earlier status never
// reaches the store API.
type JobCardService struct {
	jobCards gateway.JobCardGateway
}

// NewJobCardService creates a new job card service
func NewJobCardService(jobCards gateway.JobCardGateway) *JobCardService {
	return &JobCardService{jobCards: jobCards}
}

func (s *JobCardService) List(ctx context.Context, params gateway.ListParams) ([]entity.JobCard, error) {
	return s.jobCards.List(ctx, params)
}

func (s *JobCardService) Get(ctx context.Context, id string) (*entity.JobCard, error) {
	return s.jobCards.Get(ctx, id)
}

func (s *JobCardService) Create(ctx context.Context, jc *entity.JobCard) (*entity.JobCard, error) {
	if jc.CustomerID == "" {
		return nil, apperror.NewBadRequestError("Customer is required")
	}
	if jc.Status != "" && !jc.Status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid job status")
	}
	return s.jobCards.Create(ctx, jc)
}

// Update applies edits to a job card. A status change must move forward in
// the sequence; anything else is rejected before any request is sent.
func (s *JobCardService) Update(ctx context.Context, id string, jc *entity.JobCard) (*entity.JobCard, error) {
	if jc.Status != "" {
		current, err := s.jobCards.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if jc.Status != current.Status && !current.Status.CanTransitionTo(jc.Status) {
			return nil, apperror.NewConflictError("Job status cannot move backwards")
		}
	}
	return s.jobCards.Update(ctx, id, jc)
}

// Advance moves the job card to the next status in the sequence.
func (s *JobCardService) Advance(ctx context.Context, id string) (*entity.JobCard, error) {
	current, err := s.jobCards.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := current.Status.Next()
	if next == current.Status {
		return nil, apperror.NewConflictError("Job is already delivered")
	}
	current.Status = next
	return s.jobCards.Update(ctx, id, current)
}

func (s *JobCardService) Delete(ctx context.Context, id string) error {
	return s.jobCards.Delete(ctx, id)
}
