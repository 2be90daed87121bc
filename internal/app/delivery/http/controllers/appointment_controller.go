package controllers

import (
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/app/services/submitter"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log       *zap.Logger
	View      *listview.Controller[models.Appointment]
	Submitter *submitter.AppointmentSubmitter
}

func NewAppointmentController(logger *zap.Logger, view *listview.Controller[models.Appointment], appointmentSubmitter *submitter.AppointmentSubmitter) *AppointmentController {
	return &AppointmentController{
		Log:       logger,
		View:      view,
		Submitter: appointmentSubmitter,
	}
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	snapshot, err := ctrl.View.Apply(listChange(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListViewSuccessMessage, buildListView(snapshot))
}

func (ctrl *AppointmentController) ToggleSort(w http.ResponseWriter, r *http.Request) {
	snapshot, err := ctrl.View.ToggleSort(chi.URLParam(r, constvars.URLParamField))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListViewSuccessMessage, buildListView(snapshot))
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	values, err := decodeFormBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointment, err := ctrl.Submitter.Add(r.Context(), values)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentAddedSuccess, appointment)
}

// Departments lists the doctor departments offered by the scheduling form.
func (ctrl *AppointmentController) Departments(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentsSuccess, ctrl.Submitter.Departments())
}
