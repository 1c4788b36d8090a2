package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChatbotRepo(t *testing.T) (ChatbotRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewChatbotRepository(mock, zap.NewNop()), mock
}

func TestFindTopicsByUser(t *testing.T) {
	repo, mock := newChatbotRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(`FROM chudeai\s+WHERE userid = \$1`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ten", "mota", "userid"}).
			AddRow(int64(1), "Mã hóa đối xứng", (*string)(nil), userID))

	topics, err := repo.FindTopicsByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Mã hóa đối xứng", topics[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindQuestionsByTopic(t *testing.T) {
	repo, mock := newChatbotRepo(t)

	asked := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM hoidapai\s+WHERE id_chudeai = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "cauhoi", "cautraloi", "thoigian", "id_chudeai"}).
			AddRow(int64(9), "AES khác DES ở điểm nào?", "AES dùng khối 128 bit...", asked, int64(4)))

	questions, err := repo.FindQuestionsByTopic(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, int64(4), questions[0].TopicID)
	assert.Equal(t, "AES khác DES ở điểm nào?", questions[0].Question)
	assert.Equal(t, asked, questions[0].AskedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}
