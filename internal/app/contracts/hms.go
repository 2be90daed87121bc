package contracts

import (
	"context"
	"hms-console/internal/app/models"
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/dto/requests"
	"hms-console/internal/pkg/dto/responses"
)

type CollectionFetcher interface {
	FetchPatients(ctx context.Context) ([]models.Patient, error)
	FetchStaff(ctx context.Context, resource constvars.Resource) ([]models.Staff, error)
	FetchAppointments(ctx context.Context) ([]models.Appointment, error)
}

type MutationClient interface {
	Send(ctx context.Context, request *requests.HMSWrite) (*responses.HMSWriteResult, error)
}
