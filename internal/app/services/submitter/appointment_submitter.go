package submitter

import (
	"context"
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/hmsapi"
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/dto/responses"
	"hms-console/internal/pkg/exceptions"
	"hms-console/internal/pkg/utils"
)

type AppointmentSubmitter struct {
	Submitter *Submitter
	Store     *store.Store
}

func NewAppointmentSubmitter(submitter *Submitter, st *store.Store) *AppointmentSubmitter {
	return &AppointmentSubmitter{Submitter: submitter, Store: st}
}

// Add schedules an appointment. Empty patient and doctor fields are filled
// from the store the way the scheduling form fills them on selection.
func (a *AppointmentSubmitter) Add(ctx context.Context, values requests.FormValues) (*models.Appointment, error) {
	form := new(requests.AppointmentForm)
	if err := requests.DecodeForm(values, form); err != nil {
		return nil, a.Submitter.Reject(ctx, constvars.ResourceAppointments, constvars.ActionAdd, exceptions.ErrDecodeForm(err))
	}
	if err := utils.ValidateStruct(form); err != nil {
		return nil, a.Submitter.Reject(ctx, constvars.ResourceAppointments, constvars.ActionAdd, exceptions.ErrInputValidation(err))
	}
	appointmentTime, err := utils.FormatAppointmentTime(form.AppointmentTime)
	if err != nil {
		return nil, a.Submitter.Reject(ctx, constvars.ResourceAppointments, constvars.ActionAdd, exceptions.ErrCannotParseTime(err))
	}
	a.fill(form)

	var created *models.Appointment
	_, err = a.Submitter.Submit(ctx, Mutation{
		Resource:       constvars.ResourceAppointments,
		Action:         constvars.ActionAdd,
		Method:         constvars.MethodPost,
		Endpoint:       constvars.EndpointAppointmentAdd,
		Payload:        form.AddPayload(appointmentTime),
		SuccessMessage: constvars.AppointmentAddedSuccess,
		FailureMessage: constvars.ErrClientAddAppointment,
		Reconcile: func(ctx context.Context, result *responses.HMSWriteResult) {
			record, ok := result.Record(constvars.ResourceAppointments)
			if !ok || !hmsapi.HasIdentity(record) {
				a.Submitter.missingRecord(ctx, constvars.ResourceAppointments)
				return
			}
			appointment := hmsapi.NormalizeAppointment(record)
			a.Store.SetAppointments(func(prev []models.Appointment) []models.Appointment {
				return store.Appended(prev, appointment)
			})
			created = &appointment
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Departments lists the departments a doctor can be picked from.
func (a *AppointmentSubmitter) Departments() []string {
	return DoctorDepartments(a.Store.Doctors())
}

func (a *AppointmentSubmitter) fill(form *requests.AppointmentForm) {
	key := form.PatientID
	if key == "" {
		key = form.PatientName
	}
	if patient, ok := SelectPatient(a.Store.Patients(), key); ok {
		form.PatientID = fillEmpty(form.PatientID, patient.ID)
		form.PatientName = fillEmpty(form.PatientName, patient.Name)
		form.Contact = fillEmpty(form.Contact, patient.Contact)
	}

	doctors := a.Store.Doctors()
	doctor, ok := SelectDoctor(doctors, form.DoctorID)
	if !ok && form.DoctorName == "" && form.Department != "" {
		if inDepartment := DoctorsInDepartment(doctors, form.Department); len(inDepartment) > 0 {
			doctor, ok = inDepartment[0], true
		}
	}
	if ok {
		form.DoctorID = fillEmpty(form.DoctorID, doctor.ID)
		form.DoctorName = fillEmpty(form.DoctorName, doctor.Name)
		form.Department = fillEmpty(form.Department, doctor.Department)
	}
}

func fillEmpty(value, fallback string) string {
	if value != "" || fallback == constvars.Placeholder {
		return value
	}
	return fallback
}
