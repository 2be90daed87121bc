package controllers

import (
	"hms-console/internal/app/contracts"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type NotificationController struct {
	Log  *zap.Logger
	Feed contracts.NotificationFeed
}

func NewNotificationController(logger *zap.Logger, feed contracts.NotificationFeed) *NotificationController {
	return &NotificationController{
		Log:  logger,
		Feed: feed,
	}
}

// Drain returns the pending notifications oldest first. Each one is
// returned once.
func (ctrl *NotificationController) Drain(w http.ResponseWriter, r *http.Request) {
	notifications := ctrl.Feed.Drain()
	ctrl.Log.Debug("NotificationController.Drain called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Int(constvars.LoggingRowCountKey, len(notifications)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccess, notifications)
}
