// internal/notify/sms.go
package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	awsclient "stellar-ops-engine/internal/common/aws"
	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
)

// SMSNotifier publishes digests to an SNS topic subscribed by consultant
// phones. The subject is dropped; SMS carries the body only.
type SMSNotifier struct {
	client   *awsclient.SNSClient
	topicARN string
	logger   logger.Logger
}

func NewSMSNotifier(client *awsclient.SNSClient, topicARN string, log logger.Logger) *SMSNotifier {
	return &SMSNotifier{
		client:   client,
		topicARN: topicARN,
		logger:   log.WithFields(map[string]interface{}{"channel": "sms"}),
	}
}

func (s *SMSNotifier) Send(ctx context.Context, digest Digest) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Message:  aws.String(digest.Body),
	}

	if _, err := s.client.Publish(ctx, input); err != nil {
		s.logger.WithError(err).Error("digest sms failed", nil)
		return errors.NewNotificationFailedError("sms", err)
	}

	s.logger.Info("digest sms published", nil)
	return nil
}
