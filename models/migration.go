package models

import (
	"github.com/sirupsen/logrus"
	"github.com/smoothestguy/commandx_backend/config"
)

func MigrateTable() {
	db := config.GetDB()
	logger := config.GetLogger()

	err := db.AutoMigrate(
		&User{},
		&Project{},
		&Location{},
		&Subcontractor{},
		&WorkOrder{},
		&PaymentItem{},
		&Personnel{},
		&TimeLog{},
		&Document{},
	)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"field": "migration",
		}).Panic(err.Error())
	}
}
