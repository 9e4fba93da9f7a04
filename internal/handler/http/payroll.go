package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrmstack/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmstack/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreateProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ListProfiles(w http.ResponseWriter, r *http.Request)
	GenerateSlip(w http.ResponseWriter, r *http.Request)
	ListSlips(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func queryInt64(r *http.Request, key string) (*int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func queryInt(r *http.Request, key string) (*int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateProfile implements PayrollHandler
func (h *payrollHandlerImpl) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.CreateProfile(r.Context(), req)
	if err != nil {
		slog.Error("CreateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll profile created", result)
}

// UpdateProfile implements PayrollHandler
func (h *payrollHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.payrollService.UpdateProfile(r.Context(), id, req); err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll profile updated", nil)
}

// ListProfiles implements PayrollHandler
func (h *payrollHandlerImpl) ListProfiles(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryInt64(r, "employeeId")
	if err != nil {
		response.BadRequest(w, "employeeId must be a number", nil)
		return
	}

	results, err := h.payrollService.ListProfiles(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GenerateSlip implements PayrollHandler
func (h *payrollHandlerImpl) GenerateSlip(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GenerateSlip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GenerateSlip(r.Context(), req)
	if err != nil {
		slog.Error("GenerateSlip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated", result)
}

// ListSlips implements PayrollHandler
func (h *payrollHandlerImpl) ListSlips(w http.ResponseWriter, r *http.Request) {
	var filter payroll.SlipFilter

	employeeID, err := queryInt64(r, "employeeId")
	if err != nil {
		response.BadRequest(w, "employeeId must be a number", nil)
		return
	}
	filter.EmployeeID = employeeID

	month, err := queryInt(r, "month")
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	filter.Month = month

	year, err := queryInt(r, "year")
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	filter.Year = year

	results, err := h.payrollService.ListSlips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MonthlySummary implements PayrollHandler
func (h *payrollHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryInt64(r, "employeeId")
	if err != nil {
		response.BadRequest(w, "employeeId must be a number", nil)
		return
	}

	result, err := h.payrollService.MonthlySummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.HandleError(w, payroll.ErrNoProfile)
		return
	}

	response.Success(w, result)
}
