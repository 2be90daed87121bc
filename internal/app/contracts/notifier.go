package contracts

import (
	"context"
	"hms-console/internal/app/models"
)

type Notifier interface {
	Notify(ctx context.Context, level models.NotificationLevel, message string)
}

type NotificationFeed interface {
	Notifier
	Drain() []models.Notification
}
