package pg

import (
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DSNInfo is the loggable part of a postgres connection string.
// The password is never kept.
type DSNInfo struct {
	Host     string
	Port     uint16
	Database string
	User     string
}

// ParseDSN parses raw without opening a connection.
func ParseDSN(raw string) (DSNInfo, error) {
	cfg, err := pgconn.ParseConfig(raw)
	if err != nil {
		return DSNInfo{}, err
	}

	return DSNInfo{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Database: cfg.Database,
		User:     cfg.User,
	}, nil
}

func (i DSNInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("db_host", i.Host),
		zap.Uint16("db_port", i.Port),
		zap.String("db_name", i.Database),
		zap.String("db_user", i.User),
	}
}
