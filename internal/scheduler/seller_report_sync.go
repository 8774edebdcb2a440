// Package scheduler contém os serviços de agendamento para geração periódica de relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
)

type SellerReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SellerReportSyncService struct {
	scheduler           *gocron.Scheduler
	rankingService      ranking.RankingService
	config              SellerReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportID        string
	lastSyncError       string
}

func NewSellerReportSyncService(rankingService ranking.RankingService, cfg *config.Config) *SellerReportSyncService {
	syncConfig := SellerReportSyncConfig{
		CronSchedule: cfg.SellerReportSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.SellerReportSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do relatório de vendedores carregada")

	return &SellerReportSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		rankingService: rankingService,
		config:         syncConfig,
	}
}

func (s *SellerReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do relatório de vendedores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório de vendedores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateSellerReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração agendada do relatório de vendedores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração do relatório de vendedores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório de vendedores")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateSellerReport gera um novo relatório a partir do banco. Execuções concorrentes são descartadas.
func (s *SellerReportSyncService) UpdateSellerReport(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Geração do relatório de vendedores já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração do relatório de vendedores")

	report, err := s.rankingService.GenerateFromSource(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastSyncError = err.Error()
		return err
	}

	s.lastSyncError = ""
	s.lastReportID = report.ID

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"sellers":   len(report.Sellers),
	}).Info("Geração do relatório de vendedores concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma geração do relatório de vendedores
func (s *SellerReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração do relatório de vendedores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do relatório de vendedores")
	go func() {
		if err := s.UpdateSellerReport(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração manual do relatório de vendedores")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SellerReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_id":         s.lastReportID,
		"last_sync_error":        s.lastSyncError,
	}
}
