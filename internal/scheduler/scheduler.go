// Package scheduler triggers the daily surprise day rollover.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/bela333/surprise-day/internal/domain/contract"
	"github.com/robfig/cron/v3"
)

// resetSpec fires once a day at midnight UTC.
const resetSpec = "0 0 * * *"

type Scheduler struct {
	cron    *cron.Cron
	service contract.SurpriseService
}

func New(service contract.SurpriseService) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		service: service,
	}

	if _, err := s.cron.AddFunc(resetSpec, s.run); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	log.Println("Scheduler starting...")
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	log.Println("Scheduler stopping...")
	s.cron.Stop()
}

func (s *Scheduler) run() {
	log.Println("Resetting surprise days...")

	if err := s.service.ResetSurpriseDays(context.Background(), time.Now().UTC()); err != nil {
		log.Printf("Failed to reset surprise days: %v", err)
	}
}
