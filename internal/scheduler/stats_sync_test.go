package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	snapdomain "github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	sinkmocks "github.com/vfg2006/snap-ads-api/infrastructure/sink/mocks"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/domain"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

type fakeRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(context.Context) (snapclient.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return snapclient.Credentials{AccessToken: "fresh"}, f.err
}

func newStatsSyncService(t *testing.T, refresher CredentialsRefresher) (*StatsSyncService, *mocks.MockReporter, *sinkmocks.MockRowWriter) {
	ctrl := gomock.NewController(t)
	mockReporter := mocks.NewMockReporter(ctrl)
	mockWriter := sinkmocks.NewMockRowWriter(ctrl)

	cfg := &config.Config{StatsSync: config.StatsSync{
		CronSchedule:      "0 3 * * *",
		LookbackDays:      29,
		MaxConcurrentJobs: 2,
		Enabled:           true,
	}}

	service := NewStatsSyncService(mockReporter, refresher, mockWriter, cfg)
	service.now = func() time.Time { return time.Date(2024, 3, 10, 14, 30, 5, 0, time.UTC) }
	return service, mockReporter, mockWriter
}

func TestStatsSyncService_syncAllAccounts(t *testing.T) {
	refresher := &fakeRefresher{}
	service, mockReporter, mockWriter := newStatsSyncService(t, refresher)

	expectedWindow := utils.DateRange{
		Start: "2024-02-10T00:00:00.000000-0700",
		End:   "2024-03-10T00:00:00.000000-0700",
	}
	report := &domain.AccountReport{
		AccountID:  "acc-1",
		InsertTime: "2024-03-10 14:30:05",
		Window:     expectedWindow,
		Spend:      1.5,
		AdStats:    []snapdomain.Row{{"ad_id": "ad1"}},
	}

	mockReporter.EXPECT().ListAccountIDs(gomock.Any()).Return([]string{"acc-1"}, nil)
	mockReporter.EXPECT().BuildAccountReport(gomock.Any(), "acc-1", expectedWindow).Return(report, nil)

	written := map[string][]snapdomain.Row{}
	mockWriter.EXPECT().
		WriteRows(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, table string, rows []snapdomain.Row) error {
			written[table] = rows
			return nil
		}).
		Times(6)

	service.syncAllAccounts(context.Background())

	assert.Equal(t, 1, refresher.calls)
	assert.Equal(t, report.AdStats, written[domain.TableAdStats])
	assert.Equal(t, 1.5, written[domain.TableAccountSpend][0]["spend"])

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_sync_accounts"])
	assert.Equal(t, 0, status["last_sync_failures"])
	assert.Equal(t, false, status["sync_running"])
}

func TestStatsSyncService_syncAllAccounts_Failures(t *testing.T) {
	tests := []struct {
		name             string
		refreshErr       error
		setup            func(mockReporter *mocks.MockReporter, mockWriter *sinkmocks.MockRowWriter)
		expectedAccounts int
		expectedFailures int
	}{
		{
			name:       "Falha no refresh segue com o token atual",
			refreshErr: snapclient.ErrNoCredentials,
			setup: func(mockReporter *mocks.MockReporter, mockWriter *sinkmocks.MockRowWriter) {
				mockReporter.EXPECT().ListAccountIDs(gomock.Any()).Return([]string{}, nil)
			},
		},
		{
			name: "Erro ao listar contas interrompe a execução",
			setup: func(mockReporter *mocks.MockReporter, mockWriter *sinkmocks.MockRowWriter) {
				mockReporter.EXPECT().ListAccountIDs(gomock.Any()).Return(nil, errors.New("boom"))
			},
		},
		{
			name: "Conta com erro não impede as demais",
			setup: func(mockReporter *mocks.MockReporter, mockWriter *sinkmocks.MockRowWriter) {
				mockReporter.EXPECT().ListAccountIDs(gomock.Any()).Return([]string{"acc-1", "acc-2"}, nil)
				mockReporter.EXPECT().
					BuildAccountReport(gomock.Any(), "acc-1", gomock.Any()).
					Return(nil, snapclient.ErrStatsWindowTooLarge)
				mockReporter.EXPECT().
					BuildAccountReport(gomock.Any(), "acc-2", gomock.Any()).
					Return(&domain.AccountReport{AccountID: "acc-2"}, nil)
				mockWriter.EXPECT().WriteRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(6)
			},
			expectedAccounts: 2,
			expectedFailures: 1,
		},
		{
			name: "Erro de escrita conta como falha",
			setup: func(mockReporter *mocks.MockReporter, mockWriter *sinkmocks.MockRowWriter) {
				mockReporter.EXPECT().ListAccountIDs(gomock.Any()).Return([]string{"acc-1"}, nil)
				mockReporter.EXPECT().
					BuildAccountReport(gomock.Any(), "acc-1", gomock.Any()).
					Return(&domain.AccountReport{AccountID: "acc-1"}, nil)
				mockWriter.EXPECT().
					WriteRows(gomock.Any(), domain.TableAccountSpend, gomock.Any()).
					Return(errors.New("disk full"))
			},
			expectedAccounts: 1,
			expectedFailures: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresher := &fakeRefresher{err: tt.refreshErr}
			service, mockReporter, mockWriter := newStatsSyncService(t, refresher)
			tt.setup(mockReporter, mockWriter)

			service.syncAllAccounts(context.Background())

			status := service.GetStatus()
			assert.Equal(t, 1, refresher.calls)
			assert.Equal(t, tt.expectedAccounts, status["last_sync_accounts"])
			assert.Equal(t, tt.expectedFailures, status["last_sync_failures"])
		})
	}
}

func TestStatsSyncService_TriggerManualSync_Busy(t *testing.T) {
	service, _, _ := newStatsSyncService(t, &fakeRefresher{})
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestStatsSyncService_Start_Disabled(t *testing.T) {
	service, _, _ := newStatsSyncService(t, &fakeRefresher{})
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
