package gosns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/awsglue/go-sns/goaws"
)

// AddPermission grants the given AWS account IDs access to the given
// topic actions, recorded under the label. Action names outside the
// documented topic action set are rejected before the call.
func (s *SNS) AddPermission(ctx context.Context, params AddPermissionParams) (*AddPermissionResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	result, err := s.svc.AddPermission(ctx, &sns.AddPermissionInput{
		TopicArn:     aws.String(params.TopicArn),
		Label:        aws.String(params.Label),
		AWSAccountId: params.AccountIds,
		ActionName:   params.Actions,
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.AddPermission", err)
	}

	return &AddPermissionResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
	}, nil
}

// RemovePermission revokes the grant recorded under the label.
func (s *SNS) RemovePermission(ctx context.Context, topicArn, label string) (*RemovePermissionResponse, error) {
	if topicArn == "" {
		return nil, NewEmptyTopicArnError()
	}
	if label == "" {
		return nil, NewInvalidParamsError(errEmptyLabel)
	}

	result, err := s.svc.RemovePermission(ctx, &sns.RemovePermissionInput{
		TopicArn: aws.String(topicArn),
		Label:    aws.String(label),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.RemovePermission", err)
	}

	return &RemovePermissionResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
	}, nil
}
