package notification

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:    rdb,
		from:     "noreply@featuresgym.test",
		fromName: "FeaturesGym Team",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func TestSendScheduleConfirmation(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendScheduleConfirmation(ctx, "user@example.com", "Asha", "Iron Temple", "yoga", "morning",
		[]string{"2026-09-01", "2026-09-02"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendGymScheduleAlert(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendGymScheduleAlert(ctx, "owner@example.com", "Iron Temple", "Asha", "yoga", "morning",
		[]string{"2026-09-01"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueueCarriesJobType(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.CustomMatch(func(expected, actual []interface{}) error {
		var job Job
		require.Len(t, actual, 3)
		require.NoError(t, json.Unmarshal(actual[2].([]byte), &job))
		assert.Equal(t, TypeScheduleConfirmation, job.Type)
		assert.Equal(t, "user@example.com", job.To)
		assert.Zero(t, job.Tries)
		return nil
	}).ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendScheduleConfirmation(ctx, "user@example.com", "Asha", "Iron Temple", "yoga", "morning",
		[]string{"2026-09-01"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(5)

	svc := newTestService(db)

	assert.Equal(t, int64(5), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLengthZero(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(0)

	svc := newTestService(db)

	assert.Equal(t, int64(0), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueueError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	svc := newTestService(db)

	err := svc.SendScheduleConfirmation(ctx, "user@example.com", "Asha", "Iron Temple", "yoga", "morning",
		[]string{"2026-09-01"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
