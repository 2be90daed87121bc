package store

import (
	"context"
	"fmt"
	"hms-console/internal/app/contracts"
	"hms-console/internal/app/models"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/utils"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// ChangeEvent reports that one slot was replaced.
type ChangeEvent struct {
	Resource constvars.Resource
	Version  uint64
}

// Store holds the collections of one page session. Slots are filled once by
// Load and afterwards changed only through the setters. A fetch that
// completes after a setter call overwrites it; the last writer wins.
type Store struct {
	mu sync.RWMutex

	log      *zap.Logger
	notifier contracts.Notifier

	patients     []models.Patient
	doctors      []models.Staff
	nurses       []models.Staff
	appointments []models.Appointment
	departments  []models.Department

	versions    map[constvars.Resource]uint64
	loadErrs    map[constvars.Resource]error
	ready       map[constvars.Resource]chan struct{}
	subscribers map[int]func(ChangeEvent)
	nextSubID   int

	loadOnce sync.Once
	closed   bool
}

func NewStore(logger *zap.Logger, notifier contracts.Notifier) *Store {
	s := &Store{
		log:         logger,
		notifier:    notifier,
		departments: models.DefaultDepartments(),
		versions:    make(map[constvars.Resource]uint64),
		loadErrs:    make(map[constvars.Resource]error),
		ready:       make(map[constvars.Resource]chan struct{}),
		subscribers: make(map[int]func(ChangeEvent)),
	}
	for _, resource := range constvars.RemoteResources {
		s.ready[resource] = make(chan struct{})
	}
	departmentsReady := make(chan struct{})
	close(departmentsReady)
	s.ready[constvars.ResourceDepartments] = departmentsReady
	return s
}

// Load starts one fetch per remote collection and returns immediately.
// Only the first call has an effect.
func (s *Store) Load(ctx context.Context, fetcher contracts.CollectionFetcher) {
	s.loadOnce.Do(func() {
		ctx, requestID := utils.EnsureRequestID(ctx)
		s.log.Info("Store.Load called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)

		go func() {
			patients, err := fetcher.FetchPatients(ctx)
			s.completeFetch(ctx, constvars.ResourcePatients, err, func() int {
				if err != nil {
					s.patients = []models.Patient{}
				} else {
					s.patients = patients
				}
				return len(s.patients)
			})
		}()

		go func() {
			doctors, err := fetcher.FetchStaff(ctx, constvars.ResourceDoctors)
			s.completeFetch(ctx, constvars.ResourceDoctors, err, func() int {
				if err == nil {
					s.doctors = doctors
				}
				return len(s.doctors)
			})
		}()

		go func() {
			nurses, err := fetcher.FetchStaff(ctx, constvars.ResourceNurses)
			s.completeFetch(ctx, constvars.ResourceNurses, err, func() int {
				if err == nil {
					s.nurses = nurses
				}
				return len(s.nurses)
			})
		}()

		go func() {
			appointments, err := fetcher.FetchAppointments(ctx)
			s.completeFetch(ctx, constvars.ResourceAppointments, err, func() int {
				if err == nil {
					s.appointments = appointments
				}
				return len(s.appointments)
			})
		}()
	})
}

// completeFetch raises the failure notification before the slot turns ready.
func (s *Store) completeFetch(ctx context.Context, resource constvars.Resource, fetchErr error, assign func() int) {
	requestID := utils.GetRequestID(ctx)

	if fetchErr != nil && !s.isClosed() {
		s.log.Error("Store.completeFetch fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, string(resource)),
			zap.Error(fetchErr),
		)
		s.notifyFetchFailure(ctx, resource)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Debug("Store.completeFetch dropped after close",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, string(resource)),
		)
		return
	}
	rowCount := assign()
	s.loadErrs[resource] = fetchErr
	s.versions[resource]++
	event := ChangeEvent{Resource: resource, Version: s.versions[resource]}
	close(s.ready[resource])
	subscribers := s.subscriberList()
	s.mu.Unlock()

	if fetchErr == nil {
		s.log.Info("Store.completeFetch succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, string(resource)),
			zap.Int(constvars.LoggingRowCountKey, rowCount),
		)
	}

	publish(subscribers, event)
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Store) notifyFetchFailure(ctx context.Context, resource constvars.Resource) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, models.NotificationError, fmt.Sprintf(constvars.ErrClientLoadCollectionFormat, resource))
}

func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clip(s.patients)
}

func (s *Store) Doctors() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clip(s.doctors)
}

func (s *Store) Nurses() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clip(s.nurses)
}

// Staff returns the doctors or nurses slot.
func (s *Store) Staff(resource constvars.Resource) []models.Staff {
	if resource == constvars.ResourceNurses {
		return s.Nurses()
	}
	return s.Doctors()
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clip(s.appointments)
}

func (s *Store) Departments() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clip(s.departments)
}

func (s *Store) SetPatients(update func(prev []models.Patient) []models.Patient) {
	s.set(constvars.ResourcePatients, func() {
		s.patients = update(slices.Clip(s.patients))
	})
}

func (s *Store) SetDoctors(update func(prev []models.Staff) []models.Staff) {
	s.set(constvars.ResourceDoctors, func() {
		s.doctors = update(slices.Clip(s.doctors))
	})
}

func (s *Store) SetNurses(update func(prev []models.Staff) []models.Staff) {
	s.set(constvars.ResourceNurses, func() {
		s.nurses = update(slices.Clip(s.nurses))
	})
}

// SetStaff dispatches to SetDoctors or SetNurses.
func (s *Store) SetStaff(resource constvars.Resource, update func(prev []models.Staff) []models.Staff) {
	if resource == constvars.ResourceNurses {
		s.SetNurses(update)
		return
	}
	s.SetDoctors(update)
}

func (s *Store) SetAppointments(update func(prev []models.Appointment) []models.Appointment) {
	s.set(constvars.ResourceAppointments, func() {
		s.appointments = update(slices.Clip(s.appointments))
	})
}

func (s *Store) SetDepartments(update func(prev []models.Department) []models.Department) {
	s.set(constvars.ResourceDepartments, func() {
		s.departments = update(slices.Clip(s.departments))
	})
}

func (s *Store) set(resource constvars.Resource, apply func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	apply()
	s.versions[resource]++
	event := ChangeEvent{Resource: resource, Version: s.versions[resource]}
	subscribers := s.subscriberList()
	s.mu.Unlock()

	publish(subscribers, event)
}

// Ready is closed once the initial fetch of resource has finished, whether it
// succeeded or not. The departments slot is ready from the start.
func (s *Store) Ready(resource constvars.Resource) <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ch, ok := s.ready[resource]; ok {
		return ch
	}
	ch := make(chan struct{})
	close(ch)
	return ch
}

// Wait blocks until every listed slot is ready or ctx is done.
func (s *Store) Wait(ctx context.Context, resources ...constvars.Resource) error {
	for _, resource := range resources {
		select {
		case <-s.Ready(resource):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// LoadError is the error of the initial fetch of resource, if it failed.
func (s *Store) LoadError(resource constvars.Resource) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErrs[resource]
}

// Version increases by one on every change of the slot.
func (s *Store) Version(resource constvars.Resource) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[resource]
}

// Subscribe registers fn for change events and returns a function that
// removes it. fn runs on the goroutine that made the change, outside the lock.
func (s *Store) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Close ends the page session. Later fetch completions and setter calls are
// ignored, and waiters on unfinished slots are released.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for resource, ch := range s.ready {
		select {
		case <-ch:
		default:
			close(ch)
			s.log.Debug("Store.Close released pending slot",
				zap.String(constvars.LoggingResourceKey, string(resource)),
			)
		}
	}
	s.subscribers = make(map[int]func(ChangeEvent))
}

func (s *Store) subscriberList() []func(ChangeEvent) {
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	list := make([]func(ChangeEvent), 0, len(ids))
	for _, id := range ids {
		list = append(list, s.subscribers[id])
	}
	return list
}

func publish(subscribers []func(ChangeEvent), event ChangeEvent) {
	for _, fn := range subscribers {
		fn(event)
	}
}
