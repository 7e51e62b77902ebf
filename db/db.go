package db

import (
	"blog/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), cfg)
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
