package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/handler/http/response"
)

type MotivationHandler interface {
	CreateProgram(w http.ResponseWriter, r *http.Request)
	GetProgram(w http.ResponseWriter, r *http.Request)
	ListPrograms(w http.ResponseWriter, r *http.Request)
	UpdateProgram(w http.ResponseWriter, r *http.Request)
	DeleteProgram(w http.ResponseWriter, r *http.Request)
	AssignProgram(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type MotivationHandlerImpl struct {
	motivationService motivation.ProgramService
	departments       motivation.DepartmentRepository
}

func NewMotivationHandler(motivationService motivation.ProgramService, departments motivation.DepartmentRepository) MotivationHandler {
	return &MotivationHandlerImpl{
		motivationService: motivationService,
		departments:       departments,
	}
}

func (h *MotivationHandlerImpl) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req motivation.CreateProgramRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	program, err := h.motivationService.CreateProgram(r.Context(), req)
	if err != nil {
		slog.Error("CreateProgram service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Motivation program created", program)
}

func (h *MotivationHandlerImpl) GetProgram(w http.ResponseWriter, r *http.Request) {
	program, err := h.motivationService.GetProgram(r.Context(), chi.URLParam(r, "programID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, program)
}

func (h *MotivationHandlerImpl) ListPrograms(w http.ResponseWriter, r *http.Request) {
	departmentCode := r.URL.Query().Get("department_code")
	if departmentCode == "" {
		response.BadRequest(w, "department_code query parameter is required", nil)
		return
	}

	programs, err := h.motivationService.ListProgramsByDepartment(r.Context(), departmentCode)
	if err != nil {
		slog.Error("ListPrograms service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, programs)
}

func (h *MotivationHandlerImpl) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	var req motivation.UpdateProgramRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "programID")

	if err := h.motivationService.UpdateProgram(r.Context(), req); err != nil {
		slog.Error("UpdateProgram service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Motivation program updated", nil)
}

func (h *MotivationHandlerImpl) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := h.motivationService.DeleteProgram(r.Context(), chi.URLParam(r, "programID")); err != nil {
		slog.Error("DeleteProgram service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Motivation program deleted", nil)
}

func (h *MotivationHandlerImpl) AssignProgram(w http.ResponseWriter, r *http.Request) {
	var req motivation.AssignProgramRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.motivationService.AssignProgram(r.Context(), req); err != nil {
		slog.Error("AssignProgram service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Program assignment updated", nil)
}

func (h *MotivationHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departments.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments repository error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}
