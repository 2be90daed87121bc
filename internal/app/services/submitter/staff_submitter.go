package submitter

import (
	"context"
	"fmt"
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/hmsapi"
	"hms-console/internal/app/services/store"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/dto/responses"
	"hms-console/internal/pkg/exceptions"
	"hms-console/internal/pkg/utils"
)

type staffRoute struct {
	Resource constvars.Resource
	Add      string
	Update   string
	Delete   string
}

var staffRoutes = map[string]staffRoute{
	constvars.PositionDoctor: {
		Resource: constvars.ResourceDoctors,
		Add:      constvars.EndpointDoctorAdd,
		Update:   constvars.EndpointDoctorUpdate,
		Delete:   constvars.EndpointDoctorDelete,
	},
	constvars.PositionNurse: {
		Resource: constvars.ResourceNurses,
		Add:      constvars.EndpointNurseAdd,
		Update:   constvars.EndpointNurseUpdate,
		Delete:   constvars.EndpointNurseDelete,
	},
}

// StaffSubmitter writes doctors and nurses. Adds are routed by the form's
// position, updates and deletes by the position of the existing row.
type StaffSubmitter struct {
	Submitter *Submitter
	Store     *store.Store
}

func NewStaffSubmitter(submitter *Submitter, st *store.Store) *StaffSubmitter {
	return &StaffSubmitter{Submitter: submitter, Store: st}
}

func (s *StaffSubmitter) Add(ctx context.Context, values requests.FormValues) (*models.Staff, error) {
	form, position, route, err := s.decode(values)
	if err != nil {
		return nil, s.Submitter.Reject(ctx, constvars.ResourceDoctors, constvars.ActionAdd, err)
	}

	var created *models.Staff
	_, err = s.Submitter.Submit(ctx, Mutation{
		Resource:       route.Resource,
		Action:         constvars.ActionAdd,
		Method:         constvars.MethodPost,
		Endpoint:       route.Add,
		Payload:        form.AddPayload(position),
		SuccessMessage: fmt.Sprintf(constvars.StaffAddedSuccessFormat, position),
		FailureMessage: constvars.ErrClientAddStaff,
		Reconcile: func(ctx context.Context, result *responses.HMSWriteResult) {
			record, ok := result.Record(route.Resource)
			if !ok || !hmsapi.HasIdentity(record) {
				s.Submitter.missingRecord(ctx, route.Resource)
				return
			}
			staff := hmsapi.NormalizeStaff(record, route.Resource)
			s.Store.SetStaff(route.Resource, func(prev []models.Staff) []models.Staff {
				return store.Appended(prev, staff)
			})
			created = &staff
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update edits the staff member identified by id. The row stays in the
// collection it was loaded from, so a position other than the current one is
// rejected.
func (s *StaffSubmitter) Update(ctx context.Context, id string, values requests.FormValues) (*models.Staff, error) {
	current, ok := s.find(id)
	if !ok {
		return nil, s.Submitter.Reject(ctx, constvars.ResourceDoctors, constvars.ActionUpdate, exceptions.ErrRowNotFound(nil, constvars.ResourceDoctors, id))
	}
	route, ok := staffRoutes[current.Position]
	if !ok {
		return nil, s.Submitter.Reject(ctx, constvars.ResourceDoctors, constvars.ActionUpdate, exceptions.ErrInvalidPosition(nil, current.Position))
	}

	form, position, _, err := s.decode(staffFormValues(current).Merge(values))
	if err != nil {
		return nil, s.Submitter.Reject(ctx, route.Resource, constvars.ActionUpdate, err)
	}
	if position != current.Position {
		return nil, s.Submitter.Reject(ctx, route.Resource, constvars.ActionUpdate, exceptions.ErrPositionChange(nil, current.Position, position))
	}
	form.ID = id

	payload := form.UpdatePayload(position)
	record, err := payloadRecord(payload)
	if err != nil {
		return nil, s.Submitter.Reject(ctx, route.Resource, constvars.ActionUpdate, err)
	}
	updated := hmsapi.NormalizeStaff(record, route.Resource)

	_, err = s.Submitter.Submit(ctx, Mutation{
		Resource:       route.Resource,
		Action:         constvars.ActionUpdate,
		Method:         constvars.MethodPut,
		Endpoint:       route.Update,
		Payload:        payload,
		SuccessMessage: constvars.StaffUpdatedSuccess,
		FailureMessage: constvars.ErrClientUpdateStaff,
		Reconcile: func(ctx context.Context, result *responses.HMSWriteResult) {
			s.Store.SetStaff(route.Resource, func(prev []models.Staff) []models.Staff {
				return store.ReplacedByKey(prev, updated)
			})
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *StaffSubmitter) Delete(ctx context.Context, id string) error {
	current, ok := s.find(id)
	if !ok {
		return s.Submitter.Reject(ctx, constvars.ResourceDoctors, constvars.ActionDelete, exceptions.ErrRowNotFound(nil, constvars.ResourceDoctors, id))
	}
	route, ok := staffRoutes[current.Position]
	if !ok {
		return s.Submitter.Reject(ctx, constvars.ResourceDoctors, constvars.ActionDelete, exceptions.ErrInvalidPosition(nil, current.Position))
	}

	form := &requests.StaffForm{ID: id, Name: formValue(current.Name), Email: formValue(current.Email)}
	_, err := s.Submitter.Submit(ctx, Mutation{
		Resource:       route.Resource,
		Action:         constvars.ActionDelete,
		Method:         constvars.MethodDelete,
		Endpoint:       route.Delete,
		Payload:        form.DeletePayload(),
		SuccessMessage: constvars.StaffDeletedSuccess,
		FailureMessage: constvars.ErrClientDeleteStaff,
		Reconcile: func(ctx context.Context, result *responses.HMSWriteResult) {
			s.Store.SetStaff(route.Resource, func(prev []models.Staff) []models.Staff {
				return store.RemovedByKey(prev, id)
			})
		},
	})
	return err
}

func (s *StaffSubmitter) decode(values requests.FormValues) (*requests.StaffForm, string, staffRoute, error) {
	form := new(requests.StaffForm)
	if err := requests.DecodeForm(values, form); err != nil {
		return nil, "", staffRoute{}, exceptions.ErrDecodeForm(err)
	}
	if err := utils.ValidateStruct(form); err != nil {
		return nil, "", staffRoute{}, exceptions.ErrInvalidPosition(err, form.Position)
	}
	position, _ := utils.CanonicalPosition(form.Position)
	return form, position, staffRoutes[position], nil
}

// find looks the id up among doctors first, then nurses.
func (s *StaffSubmitter) find(id string) (models.Staff, bool) {
	if staff, ok := store.FindByKey(s.Store.Doctors(), id); ok {
		return staff, true
	}
	return store.FindByKey(s.Store.Nurses(), id)
}

func staffFormValues(staff models.Staff) requests.FormValues {
	return requests.FormValues{
		"id":             staff.ID,
		"name":           formValue(staff.Name),
		"position":       staff.Position,
		"age":            formValue(staff.Age),
		"email":          formValue(staff.Email),
		"contact":        formValue(staff.Contact),
		"address":        formValue(staff.Address),
		"experience":     formValue(staff.Experience),
		"education":      formValue(staff.Education),
		"shift":          formValue(staff.Shift),
		"gender":         formValue(staff.Gender),
		"department":     formValue(staff.Department),
		"specialization": formValue(staff.Specialization),
		"assignedDoctor": formValue(staff.AssignedDoctor),
	}
}
