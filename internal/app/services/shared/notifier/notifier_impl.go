package notifier

import (
	"context"
	"fmt"
	"hms-console/internal/app/contracts"
	"hms-console/internal/app/models"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/utils"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

func logNotification(ctx context.Context, log *zap.Logger, level models.NotificationLevel, message string) {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingNotificationKey, message),
	}
	switch level {
	case models.NotificationError:
		log.Error("notification raised", fields...)
	case models.NotificationWarning:
		log.Warn("notification raised", fields...)
	default:
		log.Info("notification raised", fields...)
	}
}

// WriterNotifier prints notifications as single lines, for terminal use.
type WriterNotifier struct {
	mu  sync.Mutex
	Out io.Writer
	Log *zap.Logger
}

func NewWriterNotifier(out io.Writer, logger *zap.Logger) *WriterNotifier {
	return &WriterNotifier{Out: out, Log: logger}
}

func (n *WriterNotifier) Notify(ctx context.Context, level models.NotificationLevel, message string) {
	logNotification(ctx, n.Log, level, message)

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.Out, "[%s] %s\n", level, message)
}

// FeedNotifier keeps the most recent notifications until they are drained.
// When full, the oldest entry is dropped.
type FeedNotifier struct {
	mu       sync.Mutex
	capacity int
	items    []models.Notification
	Log      *zap.Logger
}

func NewFeedNotifier(capacity int, logger *zap.Logger) *FeedNotifier {
	if capacity < 1 {
		capacity = 1
	}
	return &FeedNotifier{
		capacity: capacity,
		items:    make([]models.Notification, 0, capacity),
		Log:      logger,
	}
}

func (n *FeedNotifier) Notify(ctx context.Context, level models.NotificationLevel, message string) {
	logNotification(ctx, n.Log, level, message)

	notification := models.Notification{
		Level:     level,
		Message:   message,
		RequestID: utils.GetRequestID(ctx),
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.items) == n.capacity {
		copy(n.items, n.items[1:])
		n.items = n.items[:len(n.items)-1]
	}
	n.items = append(n.items, notification)
}

// Drain returns pending notifications oldest first and empties the feed.
func (n *FeedNotifier) Drain() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	drained := make([]models.Notification, len(n.items))
	copy(drained, n.items)
	n.items = n.items[:0]
	return drained
}

type multiNotifier []contracts.Notifier

// Multi fans a notification out to every notifier in order.
func Multi(notifiers ...contracts.Notifier) contracts.Notifier {
	return multiNotifier(notifiers)
}

func (m multiNotifier) Notify(ctx context.Context, level models.NotificationLevel, message string) {
	for _, n := range m {
		n.Notify(ctx, level, message)
	}
}
