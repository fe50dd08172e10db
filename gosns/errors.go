package gosns

import (
	"errors"
	"fmt"

	"github.com/awsglue/go-sns/goaws"
)

var (
	errEmptyToken = errors.New("empty confirmation token in request")
	errEmptyLabel = errors.New("empty permission label in request")
)

// InvalidProtocolError is returned when an invalid value is passed as the
// subscription protocol.
type InvalidProtocolError struct {
	*goaws.ClientErr
}

func NewInvalidProtocolError(protocol string) *InvalidProtocolError {
	return &InvalidProtocolError{
		goaws.NewClientError(fmt.Errorf("invalid protocol: %s", protocol)),
	}
}

// MissingDefaultKeyError is returned when a multi-protocol message map
// has no "default" entry.
type MissingDefaultKeyError struct {
	*goaws.ClientErr
}

func NewMissingDefaultKeyError() *MissingDefaultKeyError {
	return &MissingDefaultKeyError{
		goaws.NewClientError(errors.New(`multi-protocol message requires a "default" key`)),
	}
}

// InvalidAttributeNameError is returned when an attribute name is outside
// the documented recognized set for the operation.
type InvalidAttributeNameError struct {
	*goaws.ClientErr
}

func NewInvalidAttributeNameError(name string) *InvalidAttributeNameError {
	return &InvalidAttributeNameError{
		goaws.NewClientError(fmt.Errorf("unrecognized attribute name: %s", name)),
	}
}

// InvalidActionError is returned when a permission action name is outside
// the documented topic action set.
type InvalidActionError struct {
	*goaws.ClientErr
}

func NewInvalidActionError(action string) *InvalidActionError {
	return &InvalidActionError{
		goaws.NewClientError(fmt.Errorf("unrecognized topic action: %s", action)),
	}
}

// InvalidDestinationError is returned when a publish names zero or more
// than one of topic ARN, target ARN, and phone number.
type InvalidDestinationError struct {
	*goaws.ClientErr
}

func NewInvalidDestinationError(count int) *InvalidDestinationError {
	return &InvalidDestinationError{
		goaws.NewClientError(fmt.Errorf("publish requires exactly one of topic arn, target arn, or phone number, got %d", count)),
	}
}

// EmptyMessageError is returned when a publish carries a zero-value
// message.
type EmptyMessageError struct {
	*goaws.ClientErr
}

func NewEmptyMessageError() *EmptyMessageError {
	return &EmptyMessageError{
		goaws.NewClientError(errors.New("empty message in request")),
	}
}

// EmptyTopicArnError is returned when a required topic ARN argument is
// blank.
type EmptyTopicArnError struct {
	*goaws.ClientErr
}

func NewEmptyTopicArnError() *EmptyTopicArnError {
	return &EmptyTopicArnError{
		goaws.NewClientError(errors.New("empty topic arn in request")),
	}
}

// EmptySubscriptionArnError is returned when a required subscription ARN
// argument is blank.
type EmptySubscriptionArnError struct {
	*goaws.ClientErr
}

func NewEmptySubscriptionArnError() *EmptySubscriptionArnError {
	return &EmptySubscriptionArnError{
		goaws.NewClientError(errors.New("empty subscription arn in request")),
	}
}

// InvalidParamsError wraps a struct-validation failure.
type InvalidParamsError struct {
	*goaws.ClientErr
}

func NewInvalidParamsError(err error) *InvalidParamsError {
	return &InvalidParamsError{
		goaws.NewClientError(fmt.Errorf("invalid parameters: %w", err)),
	}
}
