package console

import (
	"bytes"
	"context"
	"errors"
	"hms-console/internal/app/models"
	"hms-console/internal/app/services/shared/notifier"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	patients []models.Patient
	err      error
}

func (f *stubFetcher) FetchPatients(ctx context.Context) ([]models.Patient, error) {
	return f.patients, nil
}

func (f *stubFetcher) FetchStaff(ctx context.Context, resource constvars.Resource) ([]models.Staff, error) {
	return nil, f.err
}

func (f *stubFetcher) FetchAppointments(ctx context.Context) ([]models.Appointment, error) {
	return []models.Appointment{}, nil
}

type unusedClient struct{}

func (unusedClient) Send(ctx context.Context, request *requests.HMSWrite) (*responses.HMSWriteResult, error) {
	return nil, errors.New("no writes expected")
}

func newTestSession(t *testing.T, out *bytes.Buffer) *Session {
	t.Helper()
	return NewSession(Dependencies{
		Log:      zap.NewNop(),
		Fetcher:  &stubFetcher{patients: []models.Patient{{ID: "p1", Name: "Jane"}}, err: errors.New("offline")},
		Client:   unusedClient{},
		Notifier: notifier.NewWriterNotifier(out, zap.NewNop()),
		FeedSize: 5,
	})
}

func waitCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSession_LoadWiresViews(t *testing.T) {
	var out bytes.Buffer
	session := newTestSession(t, &out)
	defer session.Close()

	require.NoError(t, session.LoadAndWait(waitCtx(t), constvars.RemoteResources...))

	rows := session.PatientView.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane", rows[0].Name)
	assert.Len(t, session.DepartmentView.Rows(), 7)
	assert.Error(t, session.Store.LoadError(constvars.ResourceDoctors))
}

func TestSession_NotificationsReachFeedAndNotifier(t *testing.T) {
	var out bytes.Buffer
	session := newTestSession(t, &out)
	defer session.Close()

	require.NoError(t, session.LoadAndWait(waitCtx(t), constvars.RemoteResources...))

	drained := session.Feed.Drain()
	messages := make([]string, 0, len(drained))
	for _, notification := range drained {
		messages = append(messages, notification.Message)
	}
	assert.ElementsMatch(t, []string{"Could not load doctors", "Could not load nurses"}, messages)
	assert.Contains(t, out.String(), "[error] Could not load nurses")
}

func TestSession_StaffView(t *testing.T) {
	var out bytes.Buffer
	session := newTestSession(t, &out)
	defer session.Close()

	view, ok := session.StaffView(constvars.ResourceNurses)
	require.True(t, ok)
	assert.Same(t, session.NurseView, view)

	_, ok = session.StaffView(constvars.ResourcePatients)
	assert.False(t, ok)
}

func TestSession_CloseDetachesViews(t *testing.T) {
	var out bytes.Buffer
	session := newTestSession(t, &out)
	require.NoError(t, session.LoadAndWait(waitCtx(t), constvars.ResourcePatients))

	session.Close()
	session.Store.SetPatients(func(prev []models.Patient) []models.Patient { return nil })

	assert.Len(t, session.PatientView.Rows(), 1, "a closed session ignores later changes")
}
