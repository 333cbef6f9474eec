package infrastructure

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/shared/events"
)

var _ events.QueuePublisher = (*SQSQueuePublisher)(nil)

// SQSQueuePublisher publishes JSON payloads to named SQS queues. Queue URLs
// are resolved once and cached for the life of the publisher.
type SQSQueuePublisher struct {
	client SQSAPI

	mu        sync.RWMutex
	queueURLs map[string]string
}

// NewSQSQueuePublisher creates a publisher with a pre-resolved queue URL map.
// Queues missing from the map are resolved lazily on first publish.
func NewSQSQueuePublisher(client SQSAPI, queueURLs map[string]string) *SQSQueuePublisher {
	urls := make(map[string]string, len(queueURLs))
	for name, url := range queueURLs {
		urls[name] = url
	}
	return &SQSQueuePublisher{
		client:    client,
		queueURLs: urls,
	}
}

// Publish marshals payload as JSON and sends it to the named queue.
func (p *SQSQueuePublisher) Publish(ctx context.Context, queue string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal payload for %s", queue)
	}

	queueURL, err := p.queueURL(ctx, queue)
	if err != nil {
		return err
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to publish to %s", queue)
	}

	return nil
}

func (p *SQSQueuePublisher) queueURL(ctx context.Context, queue string) (string, error) {
	p.mu.RLock()
	url, ok := p.queueURLs[queue]
	p.mu.RUnlock()
	if ok {
		return url, nil
	}

	out, err := p.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queue),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve queue URL for %s", queue)
	}

	p.mu.Lock()
	p.queueURLs[queue] = *out.QueueUrl
	p.mu.Unlock()

	return *out.QueueUrl, nil
}
