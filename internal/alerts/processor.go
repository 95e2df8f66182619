package alerts

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

// Server drains the notification queue and hands messages to the mailer.
type Server struct {
	server *asynq.Server
	mailer *Mailer
}

// StartServer runs the queue worker in the background. Delivery failures
// are retried by asynq with its default backoff.
func StartServer(redisAddr string, mailer *Mailer) *Server {
	opts := asynq.RedisClientOpt{Addr: redisAddr}

	s := &Server{
		server: asynq.NewServer(opts, asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"emails": 10,
			},
		}),
		mailer: mailer,
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcomeEmail, s.handleWelcomeEmail)

	go func() {
		if err := s.server.Run(mux); err != nil {
			log.Printf("Asynq server stopped: %v", err)
		}
	}()

	log.Printf("Asynq initialized (addr=%s)", redisAddr)
	return s
}

func (s *Server) Shutdown() {
	s.server.Shutdown()
}

func (s *Server) handleWelcomeEmail(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		log.Printf("welcome email: bad payload: %v", err)
		return nil // not retryable
	}
	if err := s.mailer.Send(p.Envelope.To, p.Envelope.Subject, p.Envelope.Body); err != nil {
		log.Printf("welcome email to %s failed: %v", p.Envelope.To, err)
		return err
	}
	return nil
}
