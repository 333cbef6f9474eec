package infrastructure

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/shared/events"
)

var _ events.NotificationPublisher = (*SNSNotificationPublisher)(nil)

// SNSNotificationPublisher fans saga lifecycle notifications out to an SNS
// topic. Observers (dashboards, governance tooling) subscribe to the topic;
// the saga itself never depends on these notifications being delivered.
type SNSNotificationPublisher struct {
	client   *sns.Client
	topicArn string
}

// NewSNSNotificationPublisher creates a publisher for the given topic.
func NewSNSNotificationPublisher(client *sns.Client, topicArn string) *SNSNotificationPublisher {
	return &SNSNotificationPublisher{
		client:   client,
		topicArn: topicArn,
	}
}

// Notify publishes one notification with type and transaction attributes for
// subscription filtering.
func (p *SNSNotificationPublisher) Notify(ctx context.Context, notification *events.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return errors.Wrap(err, "failed to marshal notification")
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicArn),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(notification.Type),
			},
			"transaction_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(notification.TransactionID),
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s notification", notification.Type)
	}

	return nil
}
