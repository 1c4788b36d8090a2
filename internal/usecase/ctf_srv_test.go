package usecase

import (
	"context"
	"testing"

	"cyberlearn/internal/apperr"
	"cyberlearn/internal/data/repository"
	"cyberlearn/internal/dto/request"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCTFService(t *testing.T) (CTFService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := repository.NewRepository(mock, zap.NewNop())
	return NewCTFService(repo, zap.NewNop()), mock
}

func ctfDetailRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "ten", "mota", "loaictf", "choai", "tacgia", "diem", "tiendo", "dap_an", "dap_an_file",
	})
}

func TestGetChallengeWithSubmission(t *testing.T) {
	svc, mock := newCTFService(t)
	userID := uuid.New()

	mock.ExpectQuery(`COALESCE\(cu\.tiendo, 0\), cu\.dap_an, cu\.dap_an_file`).
		WithArgs(userID, int64(7)).
		WillReturnRows(ctfDetailRows().AddRow(
			int64(7), "SQL Injection 101", strPtr("Tìm flag trong form đăng nhập"), "web", "sinhvien",
			strPtr("minhtri"), 350, 100, strPtr("FLAG{uni0n_select}"), (*string)(nil),
		))

	resp, err := svc.GetChallenge(context.Background(), userID, 7)
	require.NoError(t, err)
	assert.Equal(t, "SQL Injection 101", resp.Title)
	assert.Equal(t, "Khó", resp.Difficulty)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "sinhvien", resp.Audience)
	assert.True(t, resp.HasSubmitted)
	require.NotNil(t, resp.SubmittedAnswer)
	assert.Equal(t, "FLAG{uni0n_select}", *resp.SubmittedAnswer)
	assert.Nil(t, resp.SubmittedFile)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChallengeNoSubmission(t *testing.T) {
	svc, mock := newCTFService(t)
	userID := uuid.New()

	mock.ExpectQuery(`COALESCE\(cu\.tiendo, 0\), cu\.dap_an, cu\.dap_an_file`).
		WithArgs(userID, int64(3)).
		WillReturnRows(ctfDetailRows().AddRow(
			int64(3), "Crypto khởi động", (*string)(nil), "crypto", "sinhvien",
			(*string)(nil), 100, 0, (*string)(nil), (*string)(nil),
		))

	resp, err := svc.GetChallenge(context.Background(), userID, 3)
	require.NoError(t, err)
	assert.Equal(t, "Dễ", resp.Difficulty)
	assert.Equal(t, "locked", resp.Status)
	assert.False(t, resp.HasSubmitted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChallengeMissing(t *testing.T) {
	svc, mock := newCTFService(t)
	userID := uuid.New()

	mock.ExpectQuery(`COALESCE\(cu\.tiendo, 0\), cu\.dap_an, cu\.dap_an_file`).
		WithArgs(userID, int64(99)).
		WillReturnRows(ctfDetailRows())

	_, err := svc.GetChallenge(context.Background(), userID, 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAnswer(t *testing.T) {
	svc, mock := newCTFService(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT id, ten, mota, loaictf, choai, tacgia, diem`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ten", "mota", "loaictf", "choai", "tacgia", "diem"}).
			AddRow(int64(7), "SQL Injection 101", (*string)(nil), "web", "sinhvien", (*string)(nil), 350))

	mock.ExpectExec(`INSERT INTO ctf_user \(user_id, ctf_id, tiendo, dap_an, dap_an_file\)`).
		WithArgs(userID, int64(7), strPtr("FLAG{uni0n_select}"), (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := svc.SubmitAnswer(context.Background(), userID, 7, &request.SubmitCTFAnswerRequest{
		AnswerText: strPtr("FLAG{uni0n_select}"),
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAnswerRequiresContent(t *testing.T) {
	svc, mock := newCTFService(t)

	err := svc.SubmitAnswer(context.Background(), uuid.New(), 7, &request.SubmitCTFAnswerRequest{})
	assert.ErrorIs(t, err, apperr.ErrMissingField)

	// nothing reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAnswerUnknownChallenge(t *testing.T) {
	svc, mock := newCTFService(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT id, ten, mota, loaictf, choai, tacgia, diem`).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ten", "mota", "loaictf", "choai", "tacgia", "diem"}))

	err := svc.SubmitAnswer(context.Background(), userID, 404, &request.SubmitCTFAnswerRequest{
		AnswerText: strPtr("FLAG{...}"),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChallenge(t *testing.T) {
	svc, mock := newCTFService(t)

	mock.ExpectQuery(`INSERT INTO ctf \(ten, mota, loaictf, choai, tacgia, diem\)`).
		WithArgs("Reverse cơ bản", (*string)(nil), "reverse", "sinhvien", strPtr("minhtri"), 200).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	resp, err := svc.CreateChallenge(context.Background(), &request.CreateCTFRequest{
		Title:    "Reverse cơ bản",
		Category: "reverse",
		Audience: "sinhvien",
		Author:   "minhtri",
		Points:   200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, "Trung bình", resp.Difficulty)
	require.NotNil(t, resp.Author)
	assert.Equal(t, "minhtri", *resp.Author)

	assert.NoError(t, mock.ExpectationsWereMet())
}
