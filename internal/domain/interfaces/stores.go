package interfaces

import (
	"context"

	domaintypes "cryptoprobe/internal/domain/types"
)

// ReportStore persists verification reports.
type ReportStore interface {
	SaveReport(name string, report domaintypes.Report) error
	LoadReport(name string) (domaintypes.Report, bool, error)
}

// ReportPublisher ships reports to a remote collector.
type ReportPublisher interface {
	PublishReport(ctx context.Context, report domaintypes.Report) error
	FetchReport(ctx context.Context, host string) (domaintypes.Report, error)
}
