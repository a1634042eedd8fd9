package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rvaldez-mx/auto-market-api/infrastructure/integrator/inegi/inegiclient"
	"github.com/rvaldez-mx/auto-market-api/internal/domain"
	reportingmocks "github.com/rvaldez-mx/auto-market-api/internal/usecases/reporting/mocks"
	"github.com/rvaldez-mx/auto-market-api/pkg/utils"
)

func TestBulletinSyncService_syncBulletins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)

	service := &BulletinSyncService{
		config: BulletinSyncConfig{
			CronSchedule:  "0 9 10,11,12 * *",
			MonthLookBack: 2,
			SyncEnabled:   true,
		},
		reporter: mockReporter,
	}

	now := time.Now()
	pubYear, pubMonth := now.Year(), int(now.Month())
	prevYear, prevMonth := utils.PreviousMonth(pubYear, pubMonth)

	t.Run("Boletín no publicado no cuenta como error de la corrida", func(t *testing.T) {
		// El mes corriente todavía no tiene boletín; el anterior sí
		mockReporter.EXPECT().
			SyncPeriod(gomock.Any(), pubYear, pubMonth).
			Return(nil, &inegiclient.BulletinNotPublishedError{Year: pubYear, Month: pubMonth})

		mockReporter.EXPECT().
			SyncPeriod(gomock.Any(), prevYear, prevMonth).
			Return(&domain.MonthlyReportEntry{Period: "2025-06"}, nil)

		service.syncBulletins(context.Background())

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, []string{"2025-06"}, status["last_synced_periods"])
		assert.NotEmpty(t, status["last_run_id"])
	})

	t.Run("Contexto cancelado interrumpe la corrida", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Sin llamadas esperadas: la corrida termina antes del primer mes
		service.syncBulletins(ctx)

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
	})
}

func TestBulletinSyncService_Start_Disabled(t *testing.T) {
	service := &BulletinSyncService{
		config: BulletinSyncConfig{SyncEnabled: false},
	}

	err := service.Start(context.Background())
	assert.NoError(t, err)
}
