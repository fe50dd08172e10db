package gosns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/awsglue/go-sns/goaws"
)

// CreateTopic creates a new SNS topic and returns its ARN. The returned
// ARN is the handle for every subsequent operation on the topic.
func (s *SNS) CreateTopic(ctx context.Context, params CreateTopicParams) (*CreateTopicResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	input := &sns.CreateTopicInput{
		Name: aws.String(params.Name),
	}
	if len(params.Attributes) > 0 {
		input.Attributes = params.Attributes
	}
	for key, value := range params.Tags {
		input.Tags = append(input.Tags, types.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}

	result, err := s.svc.CreateTopic(ctx, input)
	if err != nil {
		return nil, goaws.Classify("s.svc.CreateTopic", err)
	}

	return &CreateTopicResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		TopicArn:         aws.ToString(result.TopicArn),
	}, nil
}

// DeleteTopic deletes a topic and all of its subscriptions. Deleting a
// topic that does not exist is not an error on the service side.
func (s *SNS) DeleteTopic(ctx context.Context, topicArn string) (*DeleteTopicResponse, error) {
	if topicArn == "" {
		return nil, NewEmptyTopicArnError()
	}

	result, err := s.svc.DeleteTopic(ctx, &sns.DeleteTopicInput{
		TopicArn: aws.String(topicArn),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.DeleteTopic", err)
	}

	return &DeleteTopicResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
	}, nil
}

// ListTopics returns one page of topic ARNs in the account. A non-empty
// NextToken in the response means more pages remain.
func (s *SNS) ListTopics(ctx context.Context, nextToken string) (*ListTopicsResponse, error) {
	input := &sns.ListTopicsInput{}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	result, err := s.svc.ListTopics(ctx, input)
	if err != nil {
		return nil, goaws.Classify("s.svc.ListTopics", err)
	}

	arns := make([]string, 0, len(result.Topics))
	for _, t := range result.Topics {
		arns = append(arns, aws.ToString(t.TopicArn))
	}

	return &ListTopicsResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		TopicArns:        arns,
		NextToken:        aws.ToString(result.NextToken),
	}, nil
}

// GetTopicAttributes returns all attributes of a topic as reported by the
// service.
func (s *SNS) GetTopicAttributes(ctx context.Context, topicArn string) (*GetTopicAttributesResponse, error) {
	if topicArn == "" {
		return nil, NewEmptyTopicArnError()
	}

	result, err := s.svc.GetTopicAttributes(ctx, &sns.GetTopicAttributesInput{
		TopicArn: aws.String(topicArn),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.GetTopicAttributes", err)
	}

	return &GetTopicAttributesResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		Attributes:       result.Attributes,
	}, nil
}

// SetTopicAttributes sets a single topic attribute. Attribute names
// outside the documented settable set are rejected before the call.
func (s *SNS) SetTopicAttributes(ctx context.Context, topicArn, name, value string) (*SetTopicAttributesResponse, error) {
	if topicArn == "" {
		return nil, NewEmptyTopicArnError()
	}
	if !settableTopicAttributes[name] {
		return nil, NewInvalidAttributeNameError(name)
	}

	result, err := s.svc.SetTopicAttributes(ctx, &sns.SetTopicAttributesInput{
		TopicArn:       aws.String(topicArn),
		AttributeName:  aws.String(name),
		AttributeValue: aws.String(value),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.SetTopicAttributes", err)
	}

	return &SetTopicAttributesResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
	}, nil
}
