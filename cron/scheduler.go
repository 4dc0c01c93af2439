package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"warehouse.GO/config"
)

// StartCron schedules the statically configured jobs plus everything
// registered via Register and starts the scheduler.
func StartCron() *cron.Cron {
	c := cron.New()
	for name, cronJob := range config.CronJobs {
		jobFunc := cronJob.Job
		if _, err := c.AddFunc(cronJob.Schedule, func() { jobFunc() }); err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	for name, j := range Jobs() {
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	c.Start()
	return c
}
