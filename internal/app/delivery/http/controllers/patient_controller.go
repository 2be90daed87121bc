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

type PatientController struct {
	Log       *zap.Logger
	View      *listview.Controller[models.Patient]
	Submitter *submitter.PatientSubmitter
}

func NewPatientController(logger *zap.Logger, view *listview.Controller[models.Patient], patientSubmitter *submitter.PatientSubmitter) *PatientController {
	return &PatientController{
		Log:       logger,
		View:      view,
		Submitter: patientSubmitter,
	}
}

func (ctrl *PatientController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.List called",
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

func (ctrl *PatientController) ToggleSort(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, constvars.URLParamField)
	snapshot, err := ctrl.View.ToggleSort(field)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListViewSuccessMessage, buildListView(snapshot))
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	values, err := decodeFormBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patient, err := ctrl.Submitter.Add(r.Context(), values)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PatientController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientAddedSuccess, patient)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	id := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("PatientController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRowIDKey, id),
	)

	values, err := decodeFormBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patient, err := ctrl.Submitter.Update(r.Context(), id, values)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdatedSuccess, patient)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	id := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("PatientController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRowIDKey, id),
	)

	if err := ctrl.Submitter.Delete(r.Context(), id); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDeletedSuccess, nil)
}
