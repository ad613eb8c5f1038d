package main

import (
	"net/http"
	"planboard/avatar"
	"planboard/bizerror"
	"planboard/client/s3"
	"planboard/domain/availability"
	"planboard/domain/holiday"
	"planboard/domain/layout"
	"planboard/domain/leave"
	"planboard/domain/member"
	"planboard/domain/reschedule"
	"planboard/domain/task"
	"planboard/domain/workload"
	"planboard/es"
	"planboard/event"
	"planboard/indices"
	"planboard/infra/tracing"
	"planboard/persistence"
	"planboard/servehttp"
	"planboard/session"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Infoln("service start")

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		logrus.Fatalf("parse database config failed %v", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			logrus.Fatalf("failed to prepare database %v", err)
		}
	}

	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		logrus.Fatalf("database connection failed %v", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB().AutoMigrate(
		&member.Member{}, &task.Task{}, &workload.Slot{},
		&leave.UserLeave{}, &holiday.Holiday{}, &event.EventRecord{},
	).Error
	if err != nil {
		logrus.Fatalf("database migration failed %v", err)
	}

	if closer := tracing.Bootstrap(); closer != nil {
		defer closer.Close()
	}

	if err := es.Bootstrap(); err != nil {
		logrus.Fatalf("elasticsearch client bootstrap failed %v", err)
	}
	indices.Bootstrap()
	indices.StartFullSyncRoutine(24 * time.Hour)

	if err := s3.Bootstrap(); err != nil {
		logrus.Fatalf("object storage bootstrap failed %v", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "planboard")
	})

	middleWares := []gin.HandlerFunc{
		bizerror.ErrorHandling(), tracing.TracingIngress(), session.SimpleAuthFilter(),
	}

	member.RegisterMembersRestAPI(engine, middleWares...)
	task.RegisterTasksRestAPI(engine, middleWares...)
	leave.RegisterLeavesRestAPI(engine, middleWares...)
	holiday.RegisterHolidaysRestAPI(engine, middleWares...)
	workload.RegisterWorkloadsRestAPI(engine, middleWares...)
	availability.RegisterAvailabilitiesRestAPI(engine, middleWares...)
	layout.RegisterTaskPillsRestAPI(engine, middleWares...)
	reschedule.RegisterDropsRestAPI(engine, middleWares...)
	indices.RegisterIndicesRestAPI(engine, middleWares...)
	avatar.RegisterAvatarsRestAPI(engine, middleWares...)

	servehttp.StartHTTPServer(engine)
}
