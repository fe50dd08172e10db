// gosns contains typed methods for interacting with AWS SNS: topic and
// subscription management, publishing, and cross-account permissions.
// The client is stateless; topics and subscriptions live entirely in the
// remote service, and every call issues exactly one signed HTTP request.
package gosns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/awsglue/go-sns/goaws"
)

//go:generate mockgen -destination=../mocks/gosnsmock/sns.go -package=gosnsmock . SNSLogic
type SNSLogic interface {
	CreateTopic(ctx context.Context, params CreateTopicParams) (*CreateTopicResponse, error)
	DeleteTopic(ctx context.Context, topicArn string) (*DeleteTopicResponse, error)
	ListTopics(ctx context.Context, nextToken string) (*ListTopicsResponse, error)
	GetTopicAttributes(ctx context.Context, topicArn string) (*GetTopicAttributesResponse, error)
	SetTopicAttributes(ctx context.Context, topicArn, name, value string) (*SetTopicAttributesResponse, error)
	Subscribe(ctx context.Context, params SubscribeParams) (*SubscribeResponse, error)
	ConfirmSubscription(ctx context.Context, topicArn, token string) (*ConfirmSubscriptionResponse, error)
	Unsubscribe(ctx context.Context, subscriptionArn string) (*UnsubscribeResponse, error)
	ListSubscriptions(ctx context.Context, nextToken string) (*ListSubscriptionsResponse, error)
	ListSubscriptionsByTopic(ctx context.Context, topicArn, nextToken string) (*ListSubscriptionsResponse, error)
	GetSubscriptionAttributes(ctx context.Context, subscriptionArn string) (*GetSubscriptionAttributesResponse, error)
	SetSubscriptionAttributes(ctx context.Context, subscriptionArn, name, value string) (*SetSubscriptionAttributesResponse, error)
	Publish(ctx context.Context, params PublishParams) (*PublishResponse, error)
	AddPermission(ctx context.Context, params AddPermissionParams) (*AddPermissionResponse, error)
	RemovePermission(ctx context.Context, topicArn, label string) (*RemovePermissionResponse, error)
}

// SNSClientAPI defines the interface for the AWS SNS client methods used by this package.
//
//go:generate mockgen -destination=./sns_client_api_test.go -package=gosns . SNSClientAPI
type SNSClientAPI interface {
	CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	DeleteTopic(ctx context.Context, params *sns.DeleteTopicInput, optFns ...func(*sns.Options)) (*sns.DeleteTopicOutput, error)
	ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error)
	GetTopicAttributes(ctx context.Context, params *sns.GetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.GetTopicAttributesOutput, error)
	SetTopicAttributes(ctx context.Context, params *sns.SetTopicAttributesInput, optFns ...func(*sns.Options)) (*sns.SetTopicAttributesOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	ConfirmSubscription(ctx context.Context, params *sns.ConfirmSubscriptionInput, optFns ...func(*sns.Options)) (*sns.ConfirmSubscriptionOutput, error)
	Unsubscribe(ctx context.Context, params *sns.UnsubscribeInput, optFns ...func(*sns.Options)) (*sns.UnsubscribeOutput, error)
	ListSubscriptions(ctx context.Context, params *sns.ListSubscriptionsInput, optFns ...func(*sns.Options)) (*sns.ListSubscriptionsOutput, error)
	ListSubscriptionsByTopic(ctx context.Context, params *sns.ListSubscriptionsByTopicInput, optFns ...func(*sns.Options)) (*sns.ListSubscriptionsByTopicOutput, error)
	GetSubscriptionAttributes(ctx context.Context, params *sns.GetSubscriptionAttributesInput, optFns ...func(*sns.Options)) (*sns.GetSubscriptionAttributesOutput, error)
	SetSubscriptionAttributes(ctx context.Context, params *sns.SetSubscriptionAttributesInput, optFns ...func(*sns.Options)) (*sns.SetSubscriptionAttributesOutput, error)
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	AddPermission(ctx context.Context, params *sns.AddPermissionInput, optFns ...func(*sns.Options)) (*sns.AddPermissionOutput, error)
	RemovePermission(ctx context.Context, params *sns.RemovePermissionInput, optFns ...func(*sns.Options)) (*sns.RemovePermissionOutput, error)
}

type SNS struct {
	svc SNSClientAPI
}

func NewSNS(config goaws.Config) *SNS {
	return &SNS{
		svc: sns.NewFromConfig(config.Config),
	}
}
