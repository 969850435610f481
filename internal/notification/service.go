package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gaurav-prajapat/featuresgym-sub010/internal/logger"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/metrics"
)

const (
	queueKey       = "notifications"
	failedQueueKey = "notifications:failed"
	maxTries       = 3
)

const (
	TypeScheduleConfirmation = "schedule_confirmation"
	TypeGymScheduleAlert     = "gym_schedule_alert"
)

type Job struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Service queues notification emails in Redis and drains the queue with a
// background worker. A queue failure is reported to the caller but never
// blocks the booking flow.
type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) enqueue(ctx context.Context, job Job) error {
	job.Tries = 0
	job.Created = time.Now()

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal notification job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue %s to %s: %v", job.Type, job.To, err)
		metrics.RecordNotification(job.Type, "queue_error")
		return err
	}

	logger.Infof("Notification queued: %s to %s", job.Type, job.To)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad notification data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending %s to %s (attempt %d)", job.Type, job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send %s to %s: %v", job.Type, job.To, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying %s to %s (attempt %d)", job.Type, job.To, job.Tries+1)
		} else {
			logger.Errorf("Notification to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordNotification(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordNotification(job.Type, "sent")
	logger.Infof("Notification sent to %s", job.To)
}

func (s *Service) sendNow(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job Job, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Notification moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.NotificationQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendScheduleConfirmation(ctx context.Context, email, name, gymName, activity, timeSlot string, dates []string) error {
	subject := fmt.Sprintf("Schedule Confirmed - %s at %s", activity, gymName)
	body := fmt.Sprintf(`Hi %s,

Your schedule is confirmed!

Gym: %s
Activity: %s
Time slot: %s
Dates:
  %s

See you at the gym!

- FeaturesGym Team`, name, gymName, activity, timeSlot, strings.Join(dates, "\n  "))

	return s.enqueue(ctx, Job{
		Type:    TypeScheduleConfirmation,
		To:      email,
		Name:    name,
		Subject: subject,
		Body:    body,
	})
}

func (s *Service) SendGymScheduleAlert(ctx context.Context, ownerEmail, gymName, memberName, activity, timeSlot string, dates []string) error {
	subject := fmt.Sprintf("New Bookings at %s", gymName)
	body := fmt.Sprintf(`Hello,

%s booked %d session(s) at %s:

Activity: %s
Time slot: %s
Dates:
  %s

- FeaturesGym Team`, memberName, len(dates), gymName, activity, timeSlot, strings.Join(dates, "\n  "))

	return s.enqueue(ctx, Job{
		Type:    TypeGymScheduleAlert,
		To:      ownerEmail,
		Name:    memberName,
		Subject: subject,
		Body:    body,
	})
}
