package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Storefront/config"
	"Storefront/pkg/log"
)

// NewDB 初始化远端数据库连接。连接不会在启动时探测，本地模式下远端可以不可达。
func NewDB(conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Remote.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{DSN: conf.Remote.Dsn, SkipInitializeWithVersion: true})
	case "postgres":
		dialector = postgres.Open(conf.Remote.Dsn)
	default:
		return nil, fmt.Errorf("database: unknown driver %q", conf.Remote.Driver)
	}

	level := logger.Warn
	if conf.Remote.Debug {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(level),
		NowFunc:              func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.L.Error("failed to open database", zap.String("driver", conf.Remote.Driver), zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Remote.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.Remote.MaxOpenConns)
	}
	if conf.Remote.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.Remote.MaxIdleConns)
	}
	log.L.Info("database configured", zap.String("driver", conf.Remote.Driver))
	return db, nil
}
