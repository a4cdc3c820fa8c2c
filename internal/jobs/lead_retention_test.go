package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealership_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockLeadPurger struct {
	mock.Mock
}

func (m *MockLeadPurger) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}

func TestLeadRetentionJob_RunOnce(t *testing.T) {
	purger := new(MockLeadPurger)
	purger.On("PurgeOlderThan", mock.Anything, 30*24*time.Hour).Return(int64(4), nil)
	job := NewLeadRetentionJob(purger, zap.NewNop(), &config.Config{LeadRetentionDays: 30})

	removed, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	purger.AssertExpectations(t)
}

func TestLeadRetentionJob_RunOnceLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	purger := new(MockLeadPurger)
	purger.On("PurgeOlderThan", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))
	job := NewLeadRetentionJob(purger, zap.New(core), &config.Config{LeadRetentionDays: 1})

	_, err := job.RunOnce(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Lead retention run failed").Len())
}

func TestLeadRetentionJob_SetupAndStart(t *testing.T) {
	purger := new(MockLeadPurger)

	disabled := NewLeadRetentionJob(purger, zap.NewNop(), &config.Config{LeadRetentionDays: 0, LeadRetentionJobSchedule: "@daily"})
	require.NoError(t, disabled.SetupAndStart())
	assert.Empty(t, disabled.cronScheduler.Entries())

	bad := NewLeadRetentionJob(purger, zap.NewNop(), &config.Config{LeadRetentionDays: 30, LeadRetentionJobSchedule: "not a schedule"})
	assert.Error(t, bad.SetupAndStart())

	ok := NewLeadRetentionJob(purger, zap.NewNop(), &config.Config{LeadRetentionDays: 30, LeadRetentionJobSchedule: "@daily"})
	require.NoError(t, ok.SetupAndStart())
	assert.Len(t, ok.cronScheduler.Entries(), 1)
	ok.Stop()
}

func TestCronLogger_FieldsFromKeysAndValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewCronLogger(zap.New(core))

	l.Info("schedule", "entry", 1, "dangling")
	l.Error(errors.New("boom"), "panic", "entry", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "MISSING_VALUE", entries[0].ContextMap()["dangling"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}
