package persistence

import (
	"errors"
	"os"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
)

type DatabaseConfig struct {
	DriverType string
	DriverArgs string
}

// ParseDatabaseConfigFromEnv DATABASE_DRIVER=mysql DATABASE_ARGS=root:root@(127.0.0.1:3306)/planboard?charset=utf8mb4&parseTime=True&loc=Local
func ParseDatabaseConfigFromEnv() (*DatabaseConfig, error) {
	driverType := os.Getenv("DATABASE_DRIVER")
	if driverType == "" {
		driverType = "mysql"
	}
	driverArgs := os.ExpandEnv(os.Getenv("DATABASE_ARGS"))
	if driverArgs == "" {
		return nil, errors.New("environment variable DATABASE_ARGS is not set")
	}
	return &DatabaseConfig{DriverType: driverType, DriverArgs: driverArgs}, nil
}

// PrepareMysqlDatabase create the database when absent, the DSN's database segment is stripped for the bootstrap connection.
func PrepareMysqlDatabase(driverArgs string) error {
	idx := strings.Index(driverArgs, "/")
	if idx < 0 {
		return errors.New("invalid database args: " + driverArgs)
	}
	databaseName := driverArgs[idx+1:]
	if argsIdx := strings.Index(databaseName, "?"); argsIdx >= 0 {
		databaseName = databaseName[0:argsIdx]
	}
	if databaseName == "" {
		return errors.New("database name not found in args: " + driverArgs)
	}

	db, err := gorm.Open("mysql", driverArgs[0:idx+1])
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Exec("CREATE DATABASE IF NOT EXISTS " + databaseName + " CHARACTER SET utf8mb4").Error
}
