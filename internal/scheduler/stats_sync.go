package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/infrastructure/sink"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/domain"
	"github.com/vfg2006/snap-ads-api/internal/usecases/reporting"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

// StatsSyncConfig representa a configuração do agendador de stats da Snap
type StatsSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	DaysSkip          int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// CredentialsRefresher renova o access token antes de cada execução
type CredentialsRefresher interface {
	Refresh(ctx context.Context) (snapclient.Credentials, error)
}

// StatsSyncService gerencia o agendamento e execução da carga de stats da Snap
type StatsSyncService struct {
	scheduler           *gocron.Scheduler
	config              StatsSyncConfig
	reporter            reporting.Reporter
	credentials         CredentialsRefresher
	writer              sink.RowWriter
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncAccounts    int
	lastSyncFailures    int
}

// NewStatsSyncService cria uma nova instância do serviço de sincronização de stats
func NewStatsSyncService(
	reporter reporting.Reporter,
	credentials CredentialsRefresher,
	writer sink.RowWriter,
	appConfig *config.Config,
) *StatsSyncService {
	syncConfig := StatsSyncConfig{
		CronSchedule:      appConfig.StatsSync.CronSchedule,
		LookbackDays:      appConfig.StatsSync.LookbackDays,
		DaysSkip:          appConfig.StatsSync.DaysSkip,
		MaxConcurrentJobs: appConfig.StatsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.StatsSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"days_skip":           syncConfig.DaysSkip,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("scheduler: stats sync configuration loaded")

	return &StatsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		reporter:    reporter,
		credentials: credentials,
		writer:      writer,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *StatsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: stats sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting stats sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduler: schedule stats sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping stats sync")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts gera e grava os relatórios de todas as contas da organização
func (s *StatsSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: stats sync already running, skipping")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	// Um refresh por execução; sem ele seguimos com o token atual
	if _, err := s.credentials.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("scheduler: could not refresh access token, using current credentials")
	}

	accountIDs, err := s.reporter.ListAccountIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("scheduler: failed to list ad accounts")
		return
	}

	if len(accountIDs) == 0 {
		logrus.Info("scheduler: no ad accounts found for stats sync")
		return
	}

	window := utils.CreateDatesAt(s.now(), s.config.LookbackDays, s.config.DaysSkip)
	logrus.WithFields(logrus.Fields{
		"start_datetime": window.Start,
		"end_datetime":   window.End,
		"accounts":       len(accountIDs),
	}).Info("scheduler: stats sync window")

	failures := s.processAccounts(ctx, accountIDs, window)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncAccounts = len(accountIDs)
	s.lastSyncFailures = failures
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accountIDs),
		"failures": failures,
	}).Info("scheduler: stats sync completed")
}

// processAccounts processa as contas com no máximo MaxConcurrentJobs em paralelo
// e devolve o número de contas com falha
func (s *StatsSyncService) processAccounts(ctx context.Context, accountIDs []string, window utils.DateRange) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	for _, accountID := range accountIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(accountID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.processAccount(ctx, accountID, window); err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"error":      err.Error(),
				}).Error("scheduler: failed to sync account stats")

				mu.Lock()
				failures++
				mu.Unlock()
			}
		}(accountID)
	}

	wg.Wait()
	return failures
}

func (s *StatsSyncService) processAccount(ctx context.Context, accountID string, window utils.DateRange) error {
	report, err := s.reporter.BuildAccountReport(ctx, accountID, window)
	if err != nil {
		return err
	}

	tables := report.Tables()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.writer.WriteRows(ctx, name, tables[name]); err != nil {
			return fmt.Errorf("scheduler: write %s: %w", name, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"ad_rows":    len(report.AdStats),
		"spend":      report.Spend,
	}).Info("scheduler: account stats written")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização; devolve false se já houver uma em andamento
func (s *StatsSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("scheduler: stats sync already running, ignoring manual trigger")
		return false
	}

	logrus.Info("scheduler: starting manual stats sync")
	go s.syncAllAccounts(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *StatsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_days_skip":         s.config.DaysSkip,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"sync_tables":            []string{domain.TableCampaigns, domain.TableAdSquads, domain.TableAds, domain.TableAdStats, domain.TableAdSquadStats, domain.TableAccountSpend},
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_accounts":     s.lastSyncAccounts,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
