package main

import (
	"time"

	"schedule-server/config"
	"schedule-server/di"
	"schedule-server/util"
)

func main() {
	config.LoadConfig()
	util.InitializeLogger(config.GetEnv())
	logger := util.GetLogger().Sugar()

	container := di.NewContainer(config.GetEnv())

	// Optional periodic re-sync, only when sheet credentials are configured.
	if container.ScheduleRefresherService.Enabled() {
		interval := time.Duration(config.AppConfig.RefreshMinutes) * time.Minute
		logger.Infof("starting periodic roster refresh every %v", interval)
		container.ScheduleRefresherService.StartPeriodicJob(interval)
	}

	logger.Info("starting server")
	container.ScheduleHttpServer.Start()
}
