package infrastructure

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/shared/events"
)

// SQSAPI is the slice of the SQS client the queue transport uses. The
// concrete *sqs.Client satisfies it.
type SQSAPI interface {
	CreateQueue(ctx context.Context, params *sqs.CreateQueueInput, optFns ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error)
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

var _ SQSAPI = (*sqs.Client)(nil)

// EnsureQueues declares every queue idempotently, retrying the whole batch a
// bounded number of times. It returns the queue name to URL mapping on
// success. Exhausting the retry budget is terminal for the caller: the
// coordinator stays down until the process restarts.
func EnsureQueues(ctx context.Context, client SQSAPI, names []string, attempts int, backoff time.Duration, logger *slog.Logger) (map[string]string, error) {
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		urls, err := declareQueues(ctx, client, names)
		if err == nil {
			return urls, nil
		}
		lastErr = err

		logger.Warn("queue declaration failed",
			"attempt", attempt,
			"attempts", attempts,
			"error", err,
		)

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, errors.Wrapf(lastErr, "failed to declare queues after %d attempts", attempts)
}

func declareQueues(ctx context.Context, client SQSAPI, names []string) (map[string]string, error) {
	urls := make(map[string]string, len(names))
	for _, name := range names {
		out, err := client.CreateQueue(ctx, &sqs.CreateQueueInput{
			QueueName: aws.String(name),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to declare queue %s", name)
		}
		urls[name] = *out.QueueUrl
	}
	return urls, nil
}

// QueueConsumer long-polls one SQS queue and hands each message body to its
// handler. A message is deleted (acknowledged) only after the handler returns
// nil; a handler error leaves it in flight for redelivery, giving
// at-least-once processing. Messages on one queue are handled strictly one
// at a time.
type QueueConsumer struct {
	client   SQSAPI
	queue    string
	queueURL string
	handler  events.MessageHandler
	logger   *slog.Logger

	waitTimeSeconds     int32
	sleepAfterError     time.Duration
	visibilityTimeout   int32
	maxNumberOfMessages int32
}

// NewQueueConsumer creates a consumer for one queue.
func NewQueueConsumer(client SQSAPI, queue, queueURL string, handler events.MessageHandler, logger *slog.Logger) *QueueConsumer {
	return &QueueConsumer{
		client:   client,
		queue:    queue,
		queueURL: queueURL,
		handler:  handler,
		logger: logger.With(
			"component", "queue-consumer",
			"queue", queue,
			"handler", handler.HandlerID(),
		),
		waitTimeSeconds:     10,
		sleepAfterError:     5 * time.Second,
		visibilityTimeout:   30,
		maxNumberOfMessages: 1,
	}
}

// Run polls until the context is cancelled.
func (c *QueueConsumer) Run(ctx context.Context) error {
	c.logger.Info("consumer started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopped")
			return nil
		default:
		}

		if err := c.poll(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error("receive failed", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(c.sleepAfterError):
			}
		}
	}
}

func (c *QueueConsumer) poll(ctx context.Context) error {
	out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.queueURL),
		MaxNumberOfMessages: c.maxNumberOfMessages,
		WaitTimeSeconds:     c.waitTimeSeconds,
		VisibilityTimeout:   c.visibilityTimeout,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to receive from %s", c.queue)
	}

	for _, message := range out.Messages {
		if message.Body == nil {
			continue
		}

		if err := c.handler.Handle(ctx, []byte(*message.Body)); err != nil {
			// No delete: the message becomes visible again and is
			// redelivered.
			c.logger.Error("handler failed, message will be redelivered", "error", err)
			continue
		}

		if _, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(c.queueURL),
			ReceiptHandle: message.ReceiptHandle,
		}); err != nil {
			// The side effect already happened; redelivery will produce a
			// duplicate downstream command, which is the documented
			// at-least-once behavior.
			c.logger.Error("ack failed after successful handling", "error", err)
		}
	}

	return nil
}
