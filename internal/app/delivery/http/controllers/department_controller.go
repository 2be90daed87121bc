package controllers

import (
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DepartmentController struct {
	Log  *zap.Logger
	View *listview.Controller[models.Department]
}

func NewDepartmentController(logger *zap.Logger, view *listview.Controller[models.Department]) *DepartmentController {
	return &DepartmentController{
		Log:  logger,
		View: view,
	}
}

func (ctrl *DepartmentController) List(w http.ResponseWriter, r *http.Request) {
	snapshot, err := ctrl.View.Apply(listChange(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListViewSuccessMessage, buildListView(snapshot))
}

func (ctrl *DepartmentController) ToggleSort(w http.ResponseWriter, r *http.Request) {
	snapshot, err := ctrl.View.ToggleSort(chi.URLParam(r, constvars.URLParamField))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetListViewSuccessMessage, buildListView(snapshot))
}
