package controllers

import (
	"fmt"
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/app/services/submitter"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/exceptions"
	"hms-console/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffController struct {
	Log       *zap.Logger
	Views     map[constvars.Resource]*listview.Controller[models.Staff]
	Submitter *submitter.StaffSubmitter
}

func NewStaffController(logger *zap.Logger, doctorView, nurseView *listview.Controller[models.Staff], staffSubmitter *submitter.StaffSubmitter) *StaffController {
	return &StaffController{
		Log: logger,
		Views: map[constvars.Resource]*listview.Controller[models.Staff]{
			constvars.ResourceDoctors: doctorView,
			constvars.ResourceNurses:  nurseView,
		},
		Submitter: staffSubmitter,
	}
}

// view picks the doctors or nurses list from the type query parameter,
// doctors when absent.
func (ctrl *StaffController) view(r *http.Request) (*listview.Controller[models.Staff], error) {
	staffType := r.URL.Query().Get(constvars.URLQueryParamType)
	if staffType == "" {
		staffType = string(constvars.ResourceDoctors)
	}
	view, ok := ctrl.Views[constvars.Resource(staffType)]
	if !ok {
		return nil, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamType)
	}
	return view, nil
}

func (ctrl *StaffController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("StaffController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	view, err := ctrl.view(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	snapshot, err := view.Apply(listChange(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListViewSuccessMessage, buildListView(snapshot))
}

func (ctrl *StaffController) ToggleSort(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.view(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	snapshot, err := view.ToggleSort(chi.URLParam(r, constvars.URLParamField))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListViewSuccessMessage, buildListView(snapshot))
}

func (ctrl *StaffController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("StaffController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	values, err := decodeFormBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	staff, err := ctrl.Submitter.Add(r.Context(), values)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.ResponseSuccess
	if staff != nil {
		message = fmt.Sprintf(constvars.StaffAddedSuccessFormat, staff.Position)
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, staff)
}

func (ctrl *StaffController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	id := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("StaffController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRowIDKey, id),
	)

	values, err := decodeFormBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	staff, err := ctrl.Submitter.Update(r.Context(), id, values)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StaffUpdatedSuccess, staff)
}

func (ctrl *StaffController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	id := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("StaffController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRowIDKey, id),
	)

	if err := ctrl.Submitter.Delete(r.Context(), id); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StaffDeletedSuccess, nil)
}
