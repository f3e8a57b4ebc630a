// internal/notify/email.go
package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	awsclient "stellar-ops-engine/internal/common/aws"
	"stellar-ops-engine/internal/common/errors"
	"stellar-ops-engine/internal/common/logger"
)

// EmailNotifier sends digests through SES.
type EmailNotifier struct {
	client *awsclient.SESClient
	from   string
	to     string
	logger logger.Logger
}

func NewEmailNotifier(client *awsclient.SESClient, from, to string, log logger.Logger) *EmailNotifier {
	return &EmailNotifier{
		client: client,
		from:   from,
		to:     to,
		logger: log.WithFields(map[string]interface{}{"channel": "email"}),
	}
}

func (e *EmailNotifier) Send(ctx context.Context, digest Digest) error {
	input := &ses.SendEmailInput{
		Source: aws.String(e.from),
		Destination: &types.Destination{
			ToAddresses: []string{e.to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(digest.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(digest.Body)},
			},
		},
	}

	if _, err := e.client.SendEmail(ctx, input); err != nil {
		e.logger.WithError(err).Error("digest email failed", nil)
		return errors.NewNotificationFailedError("email", err)
	}

	e.logger.Info("digest email sent", map[string]interface{}{"to": e.to})
	return nil
}
