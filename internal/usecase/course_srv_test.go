package usecase

import (
	"context"
	"testing"

	"cyberlearn/internal/data/entity"
	"cyberlearn/internal/data/repository"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCourseService(t *testing.T) (CourseService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := repository.NewRepository(mock, zap.NewNop())
	return NewCourseService(repo, zap.NewNop()), mock
}

func expectCourseDetailQueries(mock pgxmock.PgxPoolIface, userID uuid.UUID, courseID int64, enrolled bool, lessonRows *pgxmock.Rows) {
	mock.ExpectQuery(`SELECT id, ten, mota, thoiluong, danhgia, NULL AS tags`).
		WithArgs(courseID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ten", "mota", "thoiluong", "danhgia", "tags"}).
			AddRow(courseID, "Nhập môn an ninh mạng", strPtr("Khóa học nền tảng"), 12, 5, (*string)(nil)))

	mock.ExpectQuery(`FROM user_khoahoc\s+WHERE user_id = \$1 AND khoahoc_id = \$2`).
		WithArgs(userID, courseID).
		WillReturnRows(pgxmock.NewRows([]string{"enrolled"}).AddRow(enrolled))

	mock.ExpectQuery(`LEFT JOIN user_baihoc ub ON ub\.baihoc_id = bh\.id AND ub\.user_id = \$1`).
		WithArgs(userID, courseID).
		WillReturnRows(lessonRows)
}

func lessonRowsFor(courseID int64, completions ...bool) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "id_khoahoc", "ten", "mota", "thoiluong", "hoanthanh"})
	for i, done := range completions {
		rows.AddRow(int64(i+1), courseID, "Bài học", (*string)(nil), 30, done)
	}
	return rows
}

func TestGetCourseDetailNotEnrolledLocksEverything(t *testing.T) {
	svc, mock := newCourseService(t)
	userID := uuid.New()

	expectCourseDetailQueries(mock, userID, 1, false, lessonRowsFor(1, true, false, false))

	resp, err := svc.GetCourseDetail(context.Background(), userID, entity.RoleUserPremium, 1)
	require.NoError(t, err)

	assert.False(t, resp.IsEnrolled)
	assert.Equal(t, 0, resp.CompletedCount)
	assert.Equal(t, 0.0, resp.ProgressPercentage)
	require.Len(t, resp.Lessons, 3)
	for _, lesson := range resp.Lessons {
		assert.True(t, lesson.IsLocked)
		assert.False(t, lesson.IsCompleted)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseDetailFreeRoleSeesPreviewOnly(t *testing.T) {
	svc, mock := newCourseService(t)
	userID := uuid.New()

	expectCourseDetailQueries(mock, userID, 1, true, lessonRowsFor(1, true, false, false, false))

	resp, err := svc.GetCourseDetail(context.Background(), userID, entity.RoleUser, 1)
	require.NoError(t, err)

	assert.True(t, resp.IsEnrolled)
	require.Len(t, resp.Lessons, 4)
	assert.False(t, resp.Lessons[0].IsLocked)
	assert.False(t, resp.Lessons[1].IsLocked)
	assert.True(t, resp.Lessons[2].IsLocked)
	assert.True(t, resp.Lessons[3].IsLocked)
	assert.True(t, resp.Lessons[0].IsCompleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseDetailPaidRoleUnlocked(t *testing.T) {
	svc, mock := newCourseService(t)
	userID := uuid.New()

	expectCourseDetailQueries(mock, userID, 1, true, lessonRowsFor(1, true, true, false, false))

	resp, err := svc.GetCourseDetail(context.Background(), userID, entity.RoleUserYear, 1)
	require.NoError(t, err)

	assert.True(t, resp.IsEnrolled)
	require.Len(t, resp.Lessons, 4)
	for _, lesson := range resp.Lessons {
		assert.False(t, lesson.IsLocked)
	}
	assert.Equal(t, 2, resp.CompletedCount)
	assert.Equal(t, 50.0, resp.ProgressPercentage)

	assert.NoError(t, mock.ExpectationsWereMet())
}
