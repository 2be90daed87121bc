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

	"go.uber.org/zap"
)

type PatientSubmitter struct {
	Submitter *Submitter
	Store     *store.Store
}

func NewPatientSubmitter(submitter *Submitter, st *store.Store) *PatientSubmitter {
	return &PatientSubmitter{Submitter: submitter, Store: st}
}

func (p *PatientSubmitter) Add(ctx context.Context, values requests.FormValues) (*models.Patient, error) {
	form := new(requests.PatientForm)
	if err := requests.DecodeForm(values, form); err != nil {
		return nil, p.Submitter.Reject(ctx, constvars.ResourcePatients, constvars.ActionAdd, exceptions.ErrDecodeForm(err))
	}

	var created *models.Patient
	_, err := p.Submitter.Submit(ctx, Mutation{
		Resource:       constvars.ResourcePatients,
		Action:         constvars.ActionAdd,
		Method:         constvars.MethodPost,
		Endpoint:       constvars.EndpointPatientAdd,
		Payload:        form.AddPayload(),
		SuccessMessage: constvars.PatientAddedSuccess,
		FailureMessage: constvars.ErrClientAddPatient,
		Reconcile: func(ctx context.Context, result *responses.HMSWriteResult) {
			record, ok := result.Record(constvars.ResourcePatients)
			if !ok || !hmsapi.HasIdentity(record) {
				p.Submitter.missingRecord(ctx, constvars.ResourcePatients)
				return
			}
			patient := hmsapi.NormalizePatient(record)
			p.Store.SetPatients(func(prev []models.Patient) []models.Patient {
				return store.Appended(prev, patient)
			})
			created = &patient
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update edits the patient identified by id. Fields missing from values keep
// their current value.
func (p *PatientSubmitter) Update(ctx context.Context, id string, values requests.FormValues) (*models.Patient, error) {
	current, ok := store.FindByKey(p.Store.Patients(), id)
	if !ok {
		return nil, p.Submitter.Reject(ctx, constvars.ResourcePatients, constvars.ActionUpdate, exceptions.ErrRowNotFound(nil, constvars.ResourcePatients, id))
	}

	form := new(requests.PatientForm)
	if err := requests.DecodeForm(patientFormValues(current).Merge(values), form); err != nil {
		return nil, p.Submitter.Reject(ctx, constvars.ResourcePatients, constvars.ActionUpdate, exceptions.ErrDecodeForm(err))
	}
	form.ID = id

	payload := form.UpdatePayload()
	record, err := payloadRecord(payload)
	if err != nil {
		return nil, p.Submitter.Reject(ctx, constvars.ResourcePatients, constvars.ActionUpdate, err)
	}
	updated := hmsapi.NormalizePatient(record)
	updated.Appointments = current.Appointments

	_, err = p.Submitter.Submit(ctx, Mutation{
		Resource:       constvars.ResourcePatients,
		Action:         constvars.ActionUpdate,
		Method:         constvars.MethodPut,
		Endpoint:       constvars.EndpointPatientUpdate,
		Payload:        payload,
		SuccessMessage: constvars.PatientUpdatedSuccess,
		FailureMessage: constvars.ErrClientUpdatePatient,
		Reconcile: func(ctx context.Context, result *responses.HMSWriteResult) {
			p.Store.SetPatients(func(prev []models.Patient) []models.Patient {
				return store.ReplacedByKey(prev, updated)
			})
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (p *PatientSubmitter) Delete(ctx context.Context, id string) error {
	current, ok := store.FindByKey(p.Store.Patients(), id)
	if !ok {
		return p.Submitter.Reject(ctx, constvars.ResourcePatients, constvars.ActionDelete, exceptions.ErrRowNotFound(nil, constvars.ResourcePatients, id))
	}

	form := &requests.PatientForm{ID: id, Name: formValue(current.Name), Email: formValue(current.Email)}
	_, err := p.Submitter.Submit(ctx, Mutation{
		Resource:       constvars.ResourcePatients,
		Action:         constvars.ActionDelete,
		Method:         constvars.MethodDelete,
		Endpoint:       constvars.EndpointPatientDelete,
		Payload:        form.DeletePayload(),
		SuccessMessage: constvars.PatientDeletedSuccess,
		FailureMessage: constvars.ErrClientDeletePatient,
		Reconcile: func(ctx context.Context, result *responses.HMSWriteResult) {
			p.Store.SetPatients(func(prev []models.Patient) []models.Patient {
				return store.RemovedByKey(prev, id)
			})
			p.Submitter.Log.Debug("PatientSubmitter.Delete removed row",
				zap.String(constvars.LoggingRowIDKey, id),
			)
		},
	})
	return err
}

func patientFormValues(patient models.Patient) requests.FormValues {
	return requests.FormValues{
		"id":         patient.ID,
		"name":       formValue(patient.Name),
		"age":        formValue(patient.Age),
		"weight":     formValue(patient.Weight),
		"height":     formValue(patient.Height),
		"contact":    formValue(patient.Contact),
		"email":      formValue(patient.Email),
		"address":    formValue(patient.Address),
		"gender":     formValue(patient.Gender),
		"bloodGroup": formValue(patient.BloodGroup),
	}
}
