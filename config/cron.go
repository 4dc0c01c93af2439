package config

// CronJob pairs a cron schedule with a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs maps job names to statically configured jobs.
// Packages can also self-register via cron.Register from init().
var CronJobs = map[string]CronJob{
	// Add ad hoc jobs here
}
