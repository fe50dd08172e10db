package goaws

import (
	"errors"
	"fmt"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
)

// AwsError is a generic interface for implementing
// error handling for each service.
type AwsError interface {
	Error() string
	Retryable() bool
	ClientError() bool
}

// ClientErr represents a request rejected client-side before any network
// call is made (parameter validation, malformed payloads, etc.).
type ClientErr struct {
	msg string
}

func (e *ClientErr) Error() string {
	return e.msg
}

func (e *ClientErr) Retryable() bool {
	return false
}

func (e *ClientErr) ClientError() bool {
	return true
}

func NewClientError(err error) *ClientErr {
	if err == nil {
		return nil
	}
	return &ClientErr{
		msg: err.Error(),
	}
}

// MissingCredentialsError is returned when no credential source yields a
// usable key pair. The message never contains key material.
type MissingCredentialsError struct {
	msg string
}

func (e *MissingCredentialsError) Error() string {
	return "missing credentials: " + e.msg
}

func (e *MissingCredentialsError) Retryable() bool {
	return false
}

func (e *MissingCredentialsError) ClientError() bool {
	return true
}

func NewMissingCredentialsError(msg string) *MissingCredentialsError {
	return &MissingCredentialsError{msg: msg}
}

// SignatureError is returned when the service rejects the request
// signature, i.e. the resolved key material is malformed, expired, or
// unknown to the service.
type SignatureError struct {
	Code      string
	Message   string
	RequestID string
	cause     error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("signature rejected: %s: %s (request id: %s)", e.Code, e.Message, e.RequestID)
}

func (e *SignatureError) Retryable() bool {
	return false
}

func (e *SignatureError) ClientError() bool {
	return true
}

func (e *SignatureError) Unwrap() error {
	return e.cause
}

// TransportError is returned on network-level failure: dial errors, DNS
// failures, timeouts, and cancelled contexts. No retry is attempted.
type TransportError struct {
	Op    string
	cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure in %s: %v", e.Op, e.cause)
}

func (e *TransportError) Retryable() bool {
	return true
}

func (e *TransportError) ClientError() bool {
	return false
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

func NewTransportError(op string, err error) *TransportError {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, cause: err}
}

// ApiError is a fault reported by the service. Code and Message are the
// service's values verbatim; RequestID correlates with AWS-side logs.
type ApiError struct {
	Code      string
	Message   string
	RequestID string
	Fault     smithy.ErrorFault
	cause     error
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%s: %s (request id: %s)", e.Code, e.Message, e.RequestID)
}

func (e *ApiError) Retryable() bool {
	return throttleCodes[e.Code]
}

func (e *ApiError) ClientError() bool {
	return e.Fault == smithy.FaultClient
}

func (e *ApiError) Unwrap() error {
	return e.cause
}

var throttleCodes = map[string]bool{
	"Throttling":               true,
	"ThrottlingException":      true,
	"ThrottledException":       true,
	"RequestThrottled":         true,
	"TooManyRequestsException": true,
	"ServiceUnavailable":       true,
}

// signatureCodes are service fault codes indicating the signing
// precondition was violated rather than the operation itself failing.
var signatureCodes = map[string]bool{
	"SignatureDoesNotMatch":       true,
	"IncompleteSignature":         true,
	"InvalidClientTokenId":        true,
	"InvalidAccessKeyId":          true,
	"AuthFailure":                 true,
	"MissingAuthenticationToken":  true,
	"UnrecognizedClientException": true,
}

// Classify maps a raw SDK operation error into the package taxonomy:
// service faults become *ApiError (or *SignatureError for signing-related
// codes) and everything else becomes *TransportError. The original error
// chain is preserved via Unwrap.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		var requestID string
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			requestID = respErr.ServiceRequestID()
		}

		if signatureCodes[apiErr.ErrorCode()] {
			return &SignatureError{
				Code:      apiErr.ErrorCode(),
				Message:   apiErr.ErrorMessage(),
				RequestID: requestID,
				cause:     err,
			}
		}

		return &ApiError{
			Code:      apiErr.ErrorCode(),
			Message:   apiErr.ErrorMessage(),
			RequestID: requestID,
			Fault:     apiErr.ErrorFault(),
			cause:     err,
		}
	}

	var missing *MissingCredentialsError
	if errors.As(err, &missing) {
		return missing
	}

	return NewTransportError(op, err)
}
