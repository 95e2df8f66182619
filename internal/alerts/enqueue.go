package alerts

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Client enqueues notification tasks onto the Redis-backed queue.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// WelcomeEmail schedules a welcome email to a freshly registered user.
func (c *Client) WelcomeEmail(userID, email, name string) error {
	env := EmailEnvelope{
		To:      email,
		Subject: fmt.Sprintf("Welcome to JobHub, %s!", name),
		Body:    welcomeBody(name),
	}
	payload := WelcomeEmailPayload{UserID: userID, Name: name, Email: email, Envelope: env, SentAt: time.Now()}
	b, _ := json.Marshal(payload)
	task := asynq.NewTask(TaskWelcomeEmail, b)
	_, err := c.client.Enqueue(task, asynq.Queue("emails"))
	return err
}

func welcomeBody(name string) string {
	return fmt.Sprintf("Hi %s, thanks for joining JobHub.\n\nComplete your profile and start browsing job listings today.\n\n— JobHub Team", name)
}
