package database

import (
	"github.com/vidyonnati/foundation-backend/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) *gorm.DB {
	// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey,
	// which the submission conflict-recovery path depends on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	return db
}
