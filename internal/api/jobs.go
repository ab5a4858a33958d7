package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

// Jobs godoc
// @Summary      Merged job list of the caller
// @Description  Own assignments from both stores plus open jobs for the caller's role
// @Tags         jobs
// @Produce      json
// @Success      200 {object} JobsResponse
// @Failure      401 {object} ResponseError
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobs, err := h.s.Jobs(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to load jobs")
		return
	}

	SendJSON(ctx, w, http.StatusOK, JobsResponse{Jobs: jobs, At: time.Now()})
}

type DeclineJobRequest struct {
	Reason string `json:"reason"`
}

// AcceptJob godoc
// @Summary      Accept a job
// @Description  Accepting an open job claims it for the caller
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job id"
// @Success      200 {object} entity.JobAssignment
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError "Job taken or wrong status"
// @Router       /jobs/{id}/accept [post]
// @Security     BearerAuth
func (h *Handler) AcceptJob(w http.ResponseWriter, r *http.Request) {
	h.jobAction(w, r, h.s.AcceptJob)
}

// DeclineJob godoc
// @Summary      Decline a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path string true "Job id"
// @Param        request body DeclineJobRequest false "Decline reason"
// @Success      200 {object} entity.JobAssignment
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Router       /jobs/{id}/decline [post]
// @Security     BearerAuth
func (h *Handler) DeclineJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeclineJobRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	h.jobAction(w, r, func(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error) {
		return h.s.DeclineJob(ctx, id, req.Reason)
	})
}

// StartJob godoc
// @Summary      Start a job
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job id"
// @Success      200 {object} entity.JobAssignment
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Router       /jobs/{id}/start [post]
// @Security     BearerAuth
func (h *Handler) StartJob(w http.ResponseWriter, r *http.Request) {
	h.jobAction(w, r, h.s.StartJob)
}

// CompleteJob godoc
// @Summary      Complete a job
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job id"
// @Success      200 {object} entity.JobAssignment
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Router       /jobs/{id}/complete [post]
// @Security     BearerAuth
func (h *Handler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	h.jobAction(w, r, h.s.CompleteJob)
}

func (h *Handler) jobAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error),
) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid job id")
		return
	}

	job, err := action(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to update job")
		return
	}

	SendJSON(ctx, w, http.StatusOK, job)
}

type SetRequirementRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

// SetRequirement godoc
// @Summary      Tick a checklist item
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path string true "Job id"
// @Param        reqID path string true "Requirement id"
// @Param        request body SetRequirementRequest true "Completion state"
// @Success      200 {object} entity.JobAssignment
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Router       /jobs/{id}/requirements/{reqID} [put]
// @Security     BearerAuth
func (h *Handler) SetRequirement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid job id")
		return
	}

	var req SetRequirementRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	job, err := h.s.SetRequirement(ctx, id, chi.URLParam(r, "reqID"), req.IsCompleted)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to update requirement")
		return
	}

	SendJSON(ctx, w, http.StatusOK, job)
}

// ValidateAssignment godoc
// @Summary      Validate an assignment without saving it
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        request body entity.AssignmentRequest true "Assignment"
// @Success      200 {object} entity.ValidationResult
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Router       /assignments/validate [post]
// @Security     BearerAuth
func (h *Handler) ValidateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.AssignmentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	result, err := h.s.ValidateAssignment(ctx, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to validate assignment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, result)
}

type CreateAssignmentResponse struct {
	Job        entity.JobAssignment    `json:"job"`
	Validation entity.ValidationResult `json:"validation"`
}

// CreateAssignment godoc
// @Summary      Assign a job to a staff member
// @Description  Rejected with the validation result when any check fails; warnings are returned with the job
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        request body entity.AssignmentRequest true "Assignment"
// @Success      201 {object} CreateAssignmentResponse
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      422 {object} ValidationResponse
// @Router       /assignments [post]
// @Security     BearerAuth
func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.AssignmentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	job, result, err := h.s.CreateAssignment(ctx, req)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to create assignment")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateAssignmentResponse{Job: job, Validation: result})
}
