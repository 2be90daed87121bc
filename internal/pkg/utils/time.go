package utils

import (
	"hms-console/internal/pkg/constvars"
	"strings"
	"time"
)

var appointmentInputLayouts = []string{
	constvars.AppointmentInputTimeLayout,
	constvars.AppointmentTimeLayout,
	"2006-01-02T15:04:05",
}

// FormatAppointmentTime turns a datetime-local style value into the
// "2006-01-02 15:04:05" form the appointment endpoint stores.
func FormatAppointmentTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range appointmentInputLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.Format(constvars.AppointmentTimeLayout), nil
		}
		lastErr = err
	}
	return "", lastErr
}
