package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtrack/internal/activity"
	"github.com/2beens/gymtrack/internal/config"
	"github.com/2beens/gymtrack/internal/db"
	"github.com/2beens/gymtrack/internal/logging"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("envfile", ".env", "optional file with secrets as env vars")
	userID := flag.Int64("user", 0, "telegram id of the user to report on")
	logLevel := flag.String("loglevel", "warn", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    *logLevel,
	})

	if *userID == 0 {
		log.Fatalln("user id not set, use -user")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	secrets, err := config.LoadSecrets(*envFile)
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}
	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	service := activity.NewService(activity.NewRepo(dbPool), location, nil)
	report, err := service.UserActivity(ctx, *userID)
	if err != nil {
		log.Fatalf("activity report for user %d: %s", *userID, err)
	}

	fmt.Fprint(os.Stdout, renderReport(newStyles(lipgloss.NewRenderer(os.Stdout)), report))
}
