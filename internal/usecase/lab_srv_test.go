package usecase

import (
	"context"
	"testing"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/data/repository"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLabService(t *testing.T) (LabService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := repository.NewRepository(mock, zap.NewNop())
	return NewLabService(repo, zap.NewNop()), mock
}

func labDetailRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "ten", "loai", "mota", "pdf_url", "tiendo"})
}

func TestGetLab(t *testing.T) {
	svc, mock := newLabService(t)
	userID := uuid.New()

	mock.ExpectQuery(`LEFT JOIN lab_user lu ON lu\.lab_id = l\.id AND lu\.user_id = \$1`).
		WithArgs(userID, int64(5)).
		WillReturnRows(labDetailRows().AddRow(
			int64(5), "Phân tích gói tin với Wireshark", "network",
			strPtr("Bắt và phân tích lưu lượng HTTP"), strPtr("https://cdn.example.com/lab5.pdf"), 40,
		))

	resp, err := svc.GetLab(context.Background(), userID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Phân tích gói tin với Wireshark", resp.Title)
	assert.Equal(t, 40, resp.Progress)
	assert.Equal(t, "in-progress", resp.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLabCompleted(t *testing.T) {
	svc, mock := newLabService(t)
	userID := uuid.New()

	mock.ExpectQuery(`LEFT JOIN lab_user lu ON lu\.lab_id = l\.id AND lu\.user_id = \$1`).
		WithArgs(userID, int64(2)).
		WillReturnRows(labDetailRows().AddRow(
			int64(2), "Quét cổng với Nmap", "network", (*string)(nil), (*string)(nil), 100,
		))

	resp, err := svc.GetLab(context.Background(), userID, 2)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLabMissing(t *testing.T) {
	svc, mock := newLabService(t)
	userID := uuid.New()

	mock.ExpectQuery(`LEFT JOIN lab_user lu ON lu\.lab_id = l\.id AND lu\.user_id = \$1`).
		WithArgs(userID, int64(404)).
		WillReturnRows(labDetailRows())

	_, err := svc.GetLab(context.Background(), userID, 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
