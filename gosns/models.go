package gosns

import (
	"sync"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	"go.openly.dev/pointy"
)

// PendingConfirmation is the sentinel the service returns in place of a
// subscription ARN until the endpoint owner confirms the subscription.
const PendingConfirmation = "pending confirmation"

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ResponseMetadata carries the service-issued request identifier attached
// to every successful response, for correlation with AWS-side logs.
type ResponseMetadata struct {
	RequestID string `json:"request_id"`
}

func metadataFrom(md middleware.Metadata) ResponseMetadata {
	requestID, _ := awsmiddleware.GetRequestIDMetadata(md)
	return ResponseMetadata{RequestID: requestID}
}

// CreateTopicParams contains the inputs for creating a topic. Attribute
// names outside the documented set are rejected before any network call.
type CreateTopicParams struct {
	Name       string `validate:"required"`
	Attributes map[string]string
	Tags       map[string]string
}

type CreateTopicResponse struct {
	ResponseMetadata
	TopicArn string `json:"topic_arn"`
}

type DeleteTopicResponse struct {
	ResponseMetadata
}

type ListTopicsResponse struct {
	ResponseMetadata
	TopicArns []string `json:"topic_arns"`
	NextToken string   `json:"next_token"`
}

type GetTopicAttributesResponse struct {
	ResponseMetadata
	Attributes map[string]string `json:"attributes"`
}

type SetTopicAttributesResponse struct {
	ResponseMetadata
}

// SubscribeParams contains the inputs for subscribing an endpoint to a
// topic.
type SubscribeParams struct {
	TopicArn string `validate:"required"`
	Protocol string `validate:"required"`
	Endpoint string `validate:"required"`

	Attributes map[string]string

	// ReturnSubscriptionArn requests the real ARN in the response even
	// while the subscription is still pending confirmation.
	ReturnSubscriptionArn bool
}

type SubscribeResponse struct {
	ResponseMetadata
	SubscriptionArn string `json:"subscription_arn"`
}

// Pending reports whether the service returned the pending-confirmation
// sentinel instead of a subscription ARN.
func (r *SubscribeResponse) Pending() bool {
	return r.SubscriptionArn == PendingConfirmation
}

type ConfirmSubscriptionResponse struct {
	ResponseMetadata
	SubscriptionArn string `json:"subscription_arn"`
}

type UnsubscribeResponse struct {
	ResponseMetadata
}

// Subscription is one row of a list-subscriptions result.
type Subscription struct {
	Endpoint        string `json:"endpoint"`
	Owner           string `json:"owner"`
	Protocol        string `json:"protocol"`
	SubscriptionArn string `json:"subscription_arn"`
	TopicArn        string `json:"topic_arn"`
}

type ListSubscriptionsResponse struct {
	ResponseMetadata
	Subscriptions []Subscription `json:"subscriptions"`
	NextToken     string         `json:"next_token"`
}

type GetSubscriptionAttributesResponse struct {
	ResponseMetadata
	Attributes map[string]string `json:"attributes"`
}

type SetSubscriptionAttributesResponse struct {
	ResponseMetadata
}

// PublishParams contains the inputs for publishing a message. Exactly one
// of TopicArn, TargetArn, or PhoneNumber must be set.
type PublishParams struct {
	TopicArn    string
	TargetArn   string
	PhoneNumber string

	Message Message
	Subject string

	MessageAttributes map[string]types.MessageAttributeValue

	// FIFO topics only; passed through verbatim.
	MessageGroupId         string
	MessageDeduplicationId string
}

type PublishResponse struct {
	ResponseMetadata
	MessageId      string `json:"message_id"`
	SequenceNumber string `json:"sequence_number"`
}

// AddPermissionParams contains the inputs for granting other AWS accounts
// access to topic actions.
type AddPermissionParams struct {
	TopicArn   string   `validate:"required"`
	Label      string   `validate:"required"`
	AccountIds []string `validate:"required,min=1"`
	Actions    []string `validate:"required,min=1"`
}

type AddPermissionResponse struct {
	ResponseMetadata
}

type RemovePermissionResponse struct {
	ResponseMetadata
}

func subscriptionFromSDK(sub types.Subscription) Subscription {
	return Subscription{
		Endpoint:        pointy.PointerValue(sub.Endpoint, ""),
		Owner:           pointy.PointerValue(sub.Owner, ""),
		Protocol:        pointy.PointerValue(sub.Protocol, ""),
		SubscriptionArn: pointy.PointerValue(sub.SubscriptionArn, ""),
		TopicArn:        pointy.PointerValue(sub.TopicArn, ""),
	}
}

// validProtocols are the endpoint protocols accepted by Subscribe.
var validProtocols = map[string]bool{
	"http":        true,
	"https":       true,
	"email":       true,
	"email-json":  true,
	"sms":         true,
	"sqs":         true,
	"application": true,
	"lambda":      true,
	"firehose":    true,
}

// settableTopicAttributes are the attribute names accepted by
// SetTopicAttributes.
var settableTopicAttributes = map[string]bool{
	"DeliveryPolicy":                       true,
	"DisplayName":                          true,
	"Policy":                               true,
	"TracingConfig":                        true,
	"KmsMasterKeyId":                       true,
	"SignatureVersion":                     true,
	"ContentBasedDeduplication":            true,
	"ArchivePolicy":                        true,
	"HTTPSuccessFeedbackRoleArn":           true,
	"HTTPSuccessFeedbackSampleRate":        true,
	"HTTPFailureFeedbackRoleArn":           true,
	"LambdaSuccessFeedbackRoleArn":         true,
	"LambdaSuccessFeedbackSampleRate":      true,
	"LambdaFailureFeedbackRoleArn":         true,
	"SQSSuccessFeedbackRoleArn":            true,
	"SQSSuccessFeedbackSampleRate":         true,
	"SQSFailureFeedbackRoleArn":            true,
	"FirehoseSuccessFeedbackRoleArn":       true,
	"FirehoseSuccessFeedbackSampleRate":    true,
	"FirehoseFailureFeedbackRoleArn":       true,
	"ApplicationSuccessFeedbackRoleArn":    true,
	"ApplicationSuccessFeedbackSampleRate": true,
	"ApplicationFailureFeedbackRoleArn":    true,
}

// createTopicAttributes adds the create-only attribute names to the
// settable set.
var createTopicAttributes = map[string]bool{
	"FifoTopic":           true,
	"FifoThroughputScope": true,
}

// settableSubscriptionAttributes are the attribute names accepted by
// SetSubscriptionAttributes and by Subscribe.
var settableSubscriptionAttributes = map[string]bool{
	"DeliveryPolicy":      true,
	"FilterPolicy":        true,
	"FilterPolicyScope":   true,
	"RawMessageDelivery":  true,
	"RedrivePolicy":       true,
	"SubscriptionRoleArn": true,
}

// permissionActions are the topic action names accepted by AddPermission.
var permissionActions = map[string]bool{
	"Publish":                  true,
	"Subscribe":                true,
	"Unsubscribe":              true,
	"ConfirmSubscription":      true,
	"ListSubscriptionsByTopic": true,
	"GetTopicAttributes":       true,
	"SetTopicAttributes":       true,
	"AddPermission":            true,
	"RemovePermission":         true,
	"DeleteTopic":              true,
	"*":                        true,
}

func (p CreateTopicParams) Validate() error {
	if err := getValidator().Struct(p); err != nil {
		return NewInvalidParamsError(err)
	}
	for name := range p.Attributes {
		if !settableTopicAttributes[name] && !createTopicAttributes[name] {
			return NewInvalidAttributeNameError(name)
		}
	}
	return nil
}

func (p SubscribeParams) Validate() error {
	if err := getValidator().Struct(p); err != nil {
		return NewInvalidParamsError(err)
	}
	if !validProtocols[p.Protocol] {
		return NewInvalidProtocolError(p.Protocol)
	}
	for name := range p.Attributes {
		if !settableSubscriptionAttributes[name] {
			return NewInvalidAttributeNameError(name)
		}
	}
	return nil
}

func (p PublishParams) Validate() error {
	destinations := 0
	for _, d := range []string{p.TopicArn, p.TargetArn, p.PhoneNumber} {
		if d != "" {
			destinations++
		}
	}
	if destinations != 1 {
		return NewInvalidDestinationError(destinations)
	}
	if p.Message.IsZero() {
		return NewEmptyMessageError()
	}
	return nil
}

func (p AddPermissionParams) Validate() error {
	if err := getValidator().Struct(p); err != nil {
		return NewInvalidParamsError(err)
	}
	for _, action := range p.Actions {
		if !permissionActions[action] {
			return NewInvalidActionError(action)
		}
	}
	return nil
}
