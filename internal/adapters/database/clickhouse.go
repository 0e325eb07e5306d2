package database

import (
	"fmt"
	"time"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jmoiron/sqlx"

	"github.com/daybreakbrief/news-bot/pkg/logger"
)

// NewClickHouse opens a ClickHouse connection for the run-metrics sink
func NewClickHouse(dsn string) (*sqlx.DB, error) {
	conn, err := sqlx.Connect("clickhouse", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	conn.SetMaxOpenConns(2)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(10 * time.Minute)

	logger.Info("clickhouse connection established")

	return conn, nil
}
