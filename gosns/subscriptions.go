package gosns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/awsglue/go-sns/goaws"
)

// Subscribe requests a subscription of an endpoint to a topic. Until the
// endpoint owner confirms, the service reports the subscription ARN as
// the "pending confirmation" sentinel unless ReturnSubscriptionArn is
// set. The subscription lifecycle is owned entirely by the service.
func (s *SNS) Subscribe(ctx context.Context, params SubscribeParams) (*SubscribeResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	input := &sns.SubscribeInput{
		TopicArn:              aws.String(params.TopicArn),
		Protocol:              aws.String(params.Protocol),
		Endpoint:              aws.String(params.Endpoint),
		ReturnSubscriptionArn: params.ReturnSubscriptionArn,
	}
	if len(params.Attributes) > 0 {
		input.Attributes = params.Attributes
	}

	result, err := s.svc.Subscribe(ctx, input)
	if err != nil {
		return nil, goaws.Classify("s.svc.Subscribe", err)
	}

	return &SubscribeResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		SubscriptionArn:  aws.ToString(result.SubscriptionArn),
	}, nil
}

// ConfirmSubscription completes the subscription handshake using the
// token delivered to the endpoint by the subscription confirmation
// notification.
func (s *SNS) ConfirmSubscription(ctx context.Context, topicArn, token string) (*ConfirmSubscriptionResponse, error) {
	if topicArn == "" {
		return nil, NewEmptyTopicArnError()
	}
	if token == "" {
		return nil, NewInvalidParamsError(errEmptyToken)
	}

	result, err := s.svc.ConfirmSubscription(ctx, &sns.ConfirmSubscriptionInput{
		TopicArn: aws.String(topicArn),
		Token:    aws.String(token),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.ConfirmSubscription", err)
	}

	return &ConfirmSubscriptionResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		SubscriptionArn:  aws.ToString(result.SubscriptionArn),
	}, nil
}

// Unsubscribe deletes a subscription by ARN.
func (s *SNS) Unsubscribe(ctx context.Context, subscriptionArn string) (*UnsubscribeResponse, error) {
	if subscriptionArn == "" {
		return nil, NewEmptySubscriptionArnError()
	}

	result, err := s.svc.Unsubscribe(ctx, &sns.UnsubscribeInput{
		SubscriptionArn: aws.String(subscriptionArn),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.Unsubscribe", err)
	}

	return &UnsubscribeResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
	}, nil
}

// ListSubscriptions returns one page of the account's subscriptions. A
// topic with no subscriptions yields an empty row slice, not an error.
func (s *SNS) ListSubscriptions(ctx context.Context, nextToken string) (*ListSubscriptionsResponse, error) {
	input := &sns.ListSubscriptionsInput{}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	result, err := s.svc.ListSubscriptions(ctx, input)
	if err != nil {
		return nil, goaws.Classify("s.svc.ListSubscriptions", err)
	}

	rows := make([]Subscription, 0, len(result.Subscriptions))
	for _, sub := range result.Subscriptions {
		rows = append(rows, subscriptionFromSDK(sub))
	}

	return &ListSubscriptionsResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		Subscriptions:    rows,
		NextToken:        aws.ToString(result.NextToken),
	}, nil
}

// ListSubscriptionsByTopic returns one page of a single topic's
// subscriptions, with the same row shape as ListSubscriptions.
func (s *SNS) ListSubscriptionsByTopic(ctx context.Context, topicArn, nextToken string) (*ListSubscriptionsResponse, error) {
	if topicArn == "" {
		return nil, NewEmptyTopicArnError()
	}

	input := &sns.ListSubscriptionsByTopicInput{
		TopicArn: aws.String(topicArn),
	}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	result, err := s.svc.ListSubscriptionsByTopic(ctx, input)
	if err != nil {
		return nil, goaws.Classify("s.svc.ListSubscriptionsByTopic", err)
	}

	rows := make([]Subscription, 0, len(result.Subscriptions))
	for _, sub := range result.Subscriptions {
		rows = append(rows, subscriptionFromSDK(sub))
	}

	return &ListSubscriptionsResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		Subscriptions:    rows,
		NextToken:        aws.ToString(result.NextToken),
	}, nil
}

// GetSubscriptionAttributes returns all attributes of a subscription.
func (s *SNS) GetSubscriptionAttributes(ctx context.Context, subscriptionArn string) (*GetSubscriptionAttributesResponse, error) {
	if subscriptionArn == "" {
		return nil, NewEmptySubscriptionArnError()
	}

	result, err := s.svc.GetSubscriptionAttributes(ctx, &sns.GetSubscriptionAttributesInput{
		SubscriptionArn: aws.String(subscriptionArn),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.GetSubscriptionAttributes", err)
	}

	return &GetSubscriptionAttributesResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
		Attributes:       result.Attributes,
	}, nil
}

// SetSubscriptionAttributes sets a single subscription attribute.
// Attribute names outside the documented settable set are rejected before
// the call.
func (s *SNS) SetSubscriptionAttributes(ctx context.Context, subscriptionArn, name, value string) (*SetSubscriptionAttributesResponse, error) {
	if subscriptionArn == "" {
		return nil, NewEmptySubscriptionArnError()
	}
	if !settableSubscriptionAttributes[name] {
		return nil, NewInvalidAttributeNameError(name)
	}

	result, err := s.svc.SetSubscriptionAttributes(ctx, &sns.SetSubscriptionAttributesInput{
		SubscriptionArn: aws.String(subscriptionArn),
		AttributeName:   aws.String(name),
		AttributeValue:  aws.String(value),
	})
	if err != nil {
		return nil, goaws.Classify("s.svc.SetSubscriptionAttributes", err)
	}

	return &SetSubscriptionAttributesResponse{
		ResponseMetadata: metadataFrom(result.ResultMetadata),
	}, nil
}
