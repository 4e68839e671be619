package db

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/linskybing/storeops-go/internal/config"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/audit"
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/item"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var logger = loggo.GetLogger("storeops.db")

var DB *gorm.DB

// Models lists every table the service owns, in migration order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&user.MovedForm{},
		&form.Form{},
		&form.History{},
		&alert.Alert{},
		&audit.AuditLog{},
		&catalog.Category{},
		&catalog.Action{},
		&catalog.ReasonCode{},
		&catalog.UnitOfMeasure{},
		&catalog.Packaging{},
		&item.InventoryItem{},
		&item.EquipmentItem{},
		&item.OperationalAlert{},
	}
}

func PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

func dialector() (gorm.Dialector, error) {
	switch config.DbDriver {
	case "postgres", "":
		return postgres.Open(PostgresDSN()), nil
	case "sqlite":
		return sqlite.Open(config.SqlitePath), nil
	default:
		return nil, errors.NotSupportedf("database driver %q", config.DbDriver)
	}
}

// Init connects using the configured driver and migrates the schema.
func Init() error {
	dial, err := dialector()
	if err != nil {
		return err
	}
	level := gormlogger.Warn
	if config.IsProduction {
		level = gormlogger.Error
	}
	conn, err := gorm.Open(dial, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return errors.Annotatef(err, "connecting to %s", config.DbDriver)
	}
	if err := Migrate(conn); err != nil {
		return err
	}
	DB = conn
	logger.Infof("database connected (%s) and migrated", config.DbDriver)
	return nil
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(Models()...); err != nil {
		return errors.Annotate(err, "auto migrate")
	}
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
