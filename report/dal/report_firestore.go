package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/r8estate/platform/framework/connection"
	reportDALIface "github.com/r8estate/platform/report/dal/iface"
	"github.com/r8estate/platform/report/domain"
)

const (
	reportCollection = "reports"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

type ReportFirestoreDAL struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewReportFirestoreDAL(ctx context.Context, projectID string) (reportDALIface.IReportFirestoreDAL, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewReportFirestoreDALWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewReportFirestoreDALWithClient(fun connection.FirestoreFromContextFun) *ReportFirestoreDAL {
	return &ReportFirestoreDAL{
		firestoreClientFun: fun,
	}
}

func (d *ReportFirestoreDAL) reportCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(reportCollection)
}

func (d *ReportFirestoreDAL) Get(ctx context.Context, id string) (*domain.Report, error) {
	snap, err := d.reportCollection(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrReportNotFound
		}

		return nil, err
	}

	var report domain.Report
	if err := snap.DataTo(&report); err != nil {
		return nil, err
	}

	report.ID = snap.Ref.ID

	return &report, nil
}

func (d *ReportFirestoreDAL) ListPending(ctx context.Context, limit int) ([]*domain.Report, error) {
	query := d.reportCollection(ctx).
		Where("status", "==", domain.StatusPending)

	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	reports := make([]*domain.Report, 0, len(snaps))

	for _, snap := range snaps {
		var report domain.Report
		if err := snap.DataTo(&report); err != nil {
			return nil, err
		}

		report.ID = snap.Ref.ID

		reports = append(reports, &report)
	}

	return reports, nil
}

func (d *ReportFirestoreDAL) Create(ctx context.Context, report *domain.Report) (string, error) {
	report.CreatedAt = time.Now().UTC()

	ref, _, err := d.reportCollection(ctx).Add(ctx, report)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *ReportFirestoreDAL) SetResolution(ctx context.Context, id, reportStatus, resolvedBy string) error {
	_, err := d.reportCollection(ctx).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: reportStatus},
		{Path: "resolvedBy", Value: resolvedBy},
		{Path: "resolvedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrReportNotFound
		}

		return err
	}

	return nil
}
