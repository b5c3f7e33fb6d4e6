package helper

import (
	"camp_registration/bulk"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartBoardSweeper evicts idle dashboard boards on the given cron spec.
func StartBoardSweeper(registry *bulk.Registry, spec string, idle time.Duration) (*cron.Cron, error) {
	scheduler := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc(spec, func() {
		if n := registry.Sweep(idle); n > 0 {
			log.Printf("Board sweeper evicted %d idle boards", n)
		}
	})
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	log.Printf("Board sweeper started (%s)", spec)
	return scheduler, nil
}
