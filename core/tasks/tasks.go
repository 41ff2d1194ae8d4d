package tasks

import (
	"context"
	"encoding/json"

	"roadwise/core/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer is what modules use to schedule background work.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error
}

// Client wraps the asynq client behind the Enqueuer interface.
type Client struct {
	inner *asynq.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) opt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: c.Addr, Password: c.Password, DB: c.DB}
}

func NewClient(cfg RedisConfig) *Client {
	return &Client{inner: asynq.NewClient(cfg.opt())}
}

func (c *Client) Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	info, err := c.inner.EnqueueContext(ctx, asynq.NewTask(taskType, raw), opts...)
	if err != nil {
		logger.Error("Tasks:Enqueue:Error:", err, "type", taskType)
		return err
	}
	logger.Info("Tasks:Enqueue:Success", "type", taskType, "id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}

// Worker runs the asynq server; modules register handlers on Mux before
// Start is called.
type Worker struct {
	server *asynq.Server
	Mux    *asynq.ServeMux
}

func NewWorker(cfg RedisConfig, concurrency int) *Worker {
	if concurrency <= 0 {
		concurrency = 5
	}
	server := asynq.NewServer(cfg.opt(), asynq.Config{
		Concurrency: concurrency,
	})
	return &Worker{
		server: server,
		Mux:    asynq.NewServeMux(),
	}
}

// Start runs the worker loop in its own goroutine.
func (w *Worker) Start() error {
	logger.Info("Task worker starting")
	return w.server.Start(w.Mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
