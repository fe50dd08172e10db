package gosns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/awsglue/go-sns/goaws"
)

// Publish sends a message to a topic, a platform endpoint, or directly to
// a phone number, and returns the message ID assigned by the service.
// Parameter validation happens before any network call; the service is
// never consulted about topic existence.
func (s *SNS) Publish(ctx context.Context, params PublishParams) (*PublishResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, structure := params.Message.build()
	input := &sns.PublishInput{
		Message: aws.String(body),
	}
	if structure != "" {
		input.MessageStructure = aws.String(structure)
	}
	if params.TopicArn != "" {
		input.TopicArn = aws.String(params.TopicArn)
	}
	if params.TargetArn != "" {
		input.TargetArn = aws.String(params.TargetArn)
	}
	if params.PhoneNumber != "" {
		input.PhoneNumber = aws.String(params.PhoneNumber)
	}
	if params.Subject != "" {
		input.Subject = aws.String(params.Subject)
	}
	if len(params.MessageAttributes) > 0 {
		input.MessageAttributes = params.MessageAttributes
	}
	if params.MessageGroupId != "" {
		input.MessageGroupId = aws.String(params.MessageGroupId)
	}
	if params.MessageDeduplicationId != "" {
		input.MessageDeduplicationId = aws.String(params.MessageDeduplicationId)
	}

	result, err := s.svc.Publish(ctx, input)
	if err != nil {
		return nil, goaws.Classify("s.svc.Publish", err)
	}

	return &PublishResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		MessageId:        aws.ToString(result.MessageId),
		SequenceNumber:   aws.ToString(result.SequenceNumber),
	}, nil
}
