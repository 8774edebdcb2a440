package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_USER", "reporter")
	t.Setenv("DATABASE_PASSWORD", "s3cret")
	t.Setenv("DATABASE_URL", "db:5432/sales")
	t.Setenv("SELLER_REPORT_SYNC_ENABLED", "true")
	t.Setenv("REPORT_TOP_PRODUCTS_LIMIT", "5")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://reporter:s3cret@db:5432/sales", cfg.Database.DSN)
	assert.True(t, cfg.SellerReportSync.Enabled)
	assert.Equal(t, "0 6 * * *", cfg.SellerReportSync.CronSchedule)
	assert.Equal(t, 5, cfg.Report.TopProductsLimit)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestConfig_IsFormatAllowed(t *testing.T) {
	cfg := &Config{Report: Report{AllowedFormats: []string{"json", "xlsx"}}}

	assert.True(t, cfg.IsFormatAllowed("xlsx"))
	assert.False(t, cfg.IsFormatAllowed("csv"))
}
