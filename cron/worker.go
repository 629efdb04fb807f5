package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"malone/config"
	repo "malone/database/repository/booking"
	"malone/models"
	"malone/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler queues appointment-eve reminders for confirmed
// bookings. Satisfies booking.ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpt())}
}

// ScheduleReminder fires the day before the arrival window opens, or
// immediately for next-morning appointments booked late in the day.
func (s *AsynqReminderScheduler) ScheduleReminder(booking *models.Booking) error {
	fireAt := booking.Start.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: booking.ID,
		FireDate:  fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(bookings repo.BookingRepository) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(bookings))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings repo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Reminder task has invalid payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			logger.Error("Reminder task could not load booking",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}

		// SMS delivery is handled by the phone platform; this side only has
		// to surface the reminder for the dispatch office.
		logger.Info("Appointment reminder due",
			zap.String("bookingID", booking.ID),
			zap.String("customer", booking.CustomerName),
			zap.String("phone", booking.Phone),
			zap.String("appliance", booking.Appliance),
			zap.String("date", booking.Date),
			zap.String("slot", booking.Slot))
		return nil
	}
}
