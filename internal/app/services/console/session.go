package console

import (
	"context"
	"hms-console/internal/app/contracts"
	"hms-console/internal/app/drivers/metrics"
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/listview"
	"hms-console/internal/app/services/shared/notifier"
	"hms-console/internal/app/services/store"
	"hms-console/internal/app/services/submitter"
	"hms-console/internal/pkg/constvars"

	"go.uber.org/zap"
)

type Dependencies struct {
	Log     *zap.Logger
	Fetcher contracts.CollectionFetcher
	Client  contracts.MutationClient
	Metrics *metrics.Collector
	// Notifier receives every notification next to the feed. Optional.
	Notifier contracts.Notifier
	FeedSize int
}

// Session is one page session: a store, the list views attached to it and
// the submitters writing through it.
type Session struct {
	Log   *zap.Logger
	Store *store.Store
	Feed  contracts.NotificationFeed

	PatientView     *listview.Controller[models.Patient]
	DoctorView      *listview.Controller[models.Staff]
	NurseView       *listview.Controller[models.Staff]
	AppointmentView *listview.Controller[models.Appointment]
	DepartmentView  *listview.Controller[models.Department]

	Patients     *submitter.PatientSubmitter
	Staff        *submitter.StaffSubmitter
	Appointments *submitter.AppointmentSubmitter

	fetcher contracts.CollectionFetcher
}

func NewSession(deps Dependencies) *Session {
	feed := notifier.NewFeedNotifier(deps.FeedSize, deps.Log)
	var sink contracts.Notifier = feed
	if deps.Notifier != nil {
		sink = notifier.Multi(feed, deps.Notifier)
	}

	st := store.NewStore(deps.Log, sink)
	base := submitter.NewSubmitter(deps.Log, deps.Client, sink, deps.Metrics)

	return &Session{
		Log:             deps.Log,
		Store:           st,
		Feed:            feed,
		PatientView:     listview.NewPatientView(st, deps.Log),
		DoctorView:      listview.NewStaffView(st, constvars.ResourceDoctors, deps.Log),
		NurseView:       listview.NewStaffView(st, constvars.ResourceNurses, deps.Log),
		AppointmentView: listview.NewAppointmentView(st, deps.Log),
		DepartmentView:  listview.NewDepartmentView(st, deps.Log),
		Patients:        submitter.NewPatientSubmitter(base, st),
		Staff:           submitter.NewStaffSubmitter(base, st),
		Appointments:    submitter.NewAppointmentSubmitter(base, st),
		fetcher:         deps.Fetcher,
	}
}

// Load starts the initial fetches. It does not wait for them.
func (s *Session) Load(ctx context.Context) {
	s.Store.Load(ctx, s.fetcher)
}

// LoadAndWait starts the initial fetches and waits for the listed slots.
func (s *Session) LoadAndWait(ctx context.Context, resources ...constvars.Resource) error {
	s.Load(ctx)
	return s.Store.Wait(ctx, resources...)
}

// StaffView returns the doctors or nurses list view.
func (s *Session) StaffView(resource constvars.Resource) (*listview.Controller[models.Staff], bool) {
	switch resource {
	case constvars.ResourceDoctors:
		return s.DoctorView, true
	case constvars.ResourceNurses:
		return s.NurseView, true
	default:
		return nil, false
	}
}

func (s *Session) Close() {
	s.PatientView.Detach()
	s.DoctorView.Detach()
	s.NurseView.Detach()
	s.AppointmentView.Detach()
	s.DepartmentView.Detach()
	s.Store.Close()
}
