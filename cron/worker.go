package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tundavala/config"
	"tundavala/models"
	"tundavala/services/booking"
	"tundavala/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitBookingWorker runs the async worker in the background. It serves the
// scheduled booking tasks: expiring reservations that stayed pending past the
// configured window, and the day-before reminders.
func InitBookingWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TypeBookingExpire, handleExpireTask(bookingSvc))
	mux.HandleFunc(booking.TypeBookingReminder, handleReminderTask(bookingSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting booking worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Booking worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Booking worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleExpireTask cancels the booking if it is still pending when the task
// fires. A booking that was confirmed or cancelled in the meantime is left
// alone.
func handleExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload booking.BookingTaskPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}

		b, err := bookingSvc.GetByID(payload.BookingID)
		if err != nil {
			// A deleted booking has nothing left to expire.
			return nil
		}
		if b.Status != models.BookingPending {
			return nil
		}

		if _, err := bookingSvc.Transition(payload.BookingID, models.BookingCancelled); err != nil {
			if errors.Is(err, booking.ErrInvalidTransition) || errors.Is(err, booking.ErrConcurrentUpdate) {
				return nil
			}
			return err
		}

		utils.GetLogger().Info("Expired stale pending booking",
			zap.String("bookingID", payload.BookingID))
		return nil
	}
}

// handleReminderTask surfaces an upcoming confirmed booking in the logs.
// Push delivery rides on the mobile client polling the bookings endpoint.
func handleReminderTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload booking.BookingTaskPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}

		b, err := bookingSvc.GetByID(payload.BookingID)
		if err != nil || b.Status != models.BookingConfirmed {
			return nil
		}

		utils.GetLogger().Info("Booking reminder due",
			zap.String("bookingID", b.ID),
			zap.String("guideID", b.GuideID),
			zap.String("touristID", b.TouristID),
			zap.String("date", b.Date),
			zap.String("time", b.Time))
		return nil
	}
}

// RunStartupSweep cancels any booking that outlived its pending window while
// the worker was down. Scheduled tasks cover the steady state; this covers
// downtime.
func RunStartupSweep(bookingSvc booking.BookingService) {
	go func() {
		expired, err := bookingSvc.ExpireStalePending()
		if err != nil {
			utils.GetLogger().Error("Startup booking sweep failed", zap.Error(err))
			return
		}
		if expired > 0 {
			utils.GetLogger().Info("Startup booking sweep done", zap.Int("expired", expired))
		}
	}()
}
