package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/loan_ledger/internal/apperrors"
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/loan_ledger/internal/models"
	"github.com/SscSPs/loan_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReminderRepository struct {
	BaseRepository
}

func newPgxReminderRepository(pool *pgxpool.Pool) portsrepo.ReminderRepositoryFacade {
	return &PgxReminderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReminderRepositoryFacade = (*PgxReminderRepository)(nil)

func (r *PgxReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	m := mapping.ToModelReminder(reminder)
	query := `
		INSERT INTO reminders (reminder_id, user_id, person_name, reminder_date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ReminderID, m.UserID, m.PersonName, m.ReminderDate, m.Note, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save reminder %s: %w", m.ReminderID, err)
	}
	return nil
}

func (r *PgxReminderRepository) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	query := `
		SELECT reminder_id, user_id, person_name, reminder_date, note, created_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY reminder_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	modelReminders, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reminder])
	if err != nil {
		return nil, fmt.Errorf("failed to scan reminders: %w", err)
	}
	return mapping.ToDomainReminderSlice(modelReminders), nil
}

func (r *PgxReminderRepository) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM reminders WHERE reminder_id = $1 AND user_id = $2;`, reminderID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", reminderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
