package readstore

import (
	"context"

	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/shared"
)

type SettingsQueries interface {
	GetNotificationSettings(ctx context.Context, db sqlc.DBTX) (sqlc.GetNotificationSettingsRow, error)
}

// SettingsReader loads the clinic's notification settings. A missing row
// reads as notifications disabled.
type SettingsReader struct {
	queries SettingsQueries
	db      sqlc.DBTX
}

func NewSettingsReader(queries SettingsQueries, db sqlc.DBTX) *SettingsReader {
	return &SettingsReader{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReader) Load(ctx context.Context) (shared.NotificationSettings, error) {
	row, err := r.queries.GetNotificationSettings(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.NotificationSettings{}, nil
		}
		return shared.NotificationSettings{}, infra.WrapRepoErr("failed to load notification settings", err)
	}
	return shared.NotificationSettings{
		Enabled:          row.Enabled,
		GatewayURL:       row.GatewayUrl,
		GatewayToken:     row.GatewayToken,
		StaffPhone:       row.StaffPhone,
		BookingTemplate:  row.BookingTemplate,
		ReminderTemplate: row.ReminderTemplate,
	}, nil
}
