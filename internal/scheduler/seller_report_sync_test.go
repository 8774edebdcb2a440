package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, enabled bool) (*SellerReportSyncService, *mocks.MockRankingService) {
	ctrl := gomock.NewController(t)
	rankingService := mocks.NewMockRankingService(ctrl)

	cfg := &config.Config{
		SellerReportSync: config.SellerReportSync{
			CronSchedule: "0 6 * * *",
			Enabled:      enabled,
		},
	}

	return NewSellerReportSyncService(rankingService, cfg), rankingService
}

func TestSellerReportSyncService_UpdateSellerReport(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(m *mocks.MockRankingService)
		wantErr      bool
		wantReportID string
		wantSyncErr  string
	}{
		{
			name: "Relatório gerado com sucesso",
			setup: func(m *mocks.MockRankingService) {
				m.EXPECT().GenerateFromSource(gomock.Any()).Return(&domain.SellerPerformanceReport{
					ID:      "abc123def456",
					Sellers: []domain.SellerReport{{SellerID: "seller_1"}},
				}, nil)
			},
			wantReportID: "abc123def456",
		},
		{
			name: "Erro na origem dos dados",
			setup: func(m *mocks.MockRankingService) {
				m.EXPECT().GenerateFromSource(gomock.Any()).Return(nil, errors.New("banco indisponível"))
			},
			wantErr:     true,
			wantSyncErr: "banco indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, rankingService := newTestSyncService(t, true)
			tt.setup(rankingService)

			err := service.UpdateSellerReport(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantReportID, status["last_report_id"])
			assert.Equal(t, tt.wantSyncErr, status["last_sync_error"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestSellerReportSyncService_UpdateSellerReportEmExecucao(t *testing.T) {
	service, _ := newTestSyncService(t, true)
	service.syncRunning = true

	// Nenhuma chamada ao serviço de ranking é esperada
	err := service.UpdateSellerReport(context.Background())
	assert.NoError(t, err)
	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestSellerReportSyncService_TriggerManualSync(t *testing.T) {
	service, rankingService := newTestSyncService(t, false)

	done := make(chan struct{})
	rankingService.EXPECT().GenerateFromSource(gomock.Any()).DoAndReturn(
		func(context.Context) (*domain.SellerPerformanceReport, error) {
			close(done)
			return &domain.SellerPerformanceReport{ID: "manual000001"}, nil
		},
	)

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("geração manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_report_id"] == "manual000001"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSellerReportSyncService_StartDesabilitado(t *testing.T) {
	service, _ := newTestSyncService(t, false)

	err := service.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, len(service.scheduler.Jobs()))
}

func TestSellerReportSyncService_StartCronInvalida(t *testing.T) {
	service, _ := newTestSyncService(t, true)
	service.config.CronSchedule = "isso não é cron"

	err := service.Start(context.Background())
	assert.Error(t, err)
}

func TestSellerReportSyncService_StartAgendaJob(t *testing.T) {
	service, _ := newTestSyncService(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	require.NoError(t, err)
	assert.Len(t, service.scheduler.Jobs(), 1)
	assert.True(t, service.scheduler.IsRunning())
}
