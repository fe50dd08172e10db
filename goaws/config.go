// package goaws resolves AWS credentials and region into an explicit
// configuration value for use with the SNS service client. Resolution
// follows a fixed precedence: explicit arguments > environment variables
// (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN) > named
// profile in the shared credentials file. The resolved Config is carried
// by value; no process-wide state is mutated by profile selection.
package goaws

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// DefaultRegion is used when no region is found in the arguments,
// environment, or shared config files.
const DefaultRegion = "us-east-1"

// Config carries a fully resolved AWS configuration. Credentials are
// verified at construction time, so a Config value is always usable.
type Config struct {
	Config aws.Config
}

// Options holds the raw inputs to credential and region resolution.
type Options struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
	Profile         string

	// SharedCredentialsFiles overrides the conventional
	// ~/.aws/credentials location.
	SharedCredentialsFiles []string
	SharedConfigFiles      []string

	// BaseEndpoint overrides the regional service endpoint.
	BaseEndpoint string

	HTTPClient config.HTTPClient
}

type Option func(*Options)

// WithStaticCredentials sets an explicit key pair, taking precedence over
// the environment and the shared credentials file.
func WithStaticCredentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return func(o *Options) {
		o.AccessKeyID = accessKeyID
		o.SecretAccessKey = secretAccessKey
		o.SessionToken = sessionToken
	}
}

// WithProfile selects a named profile from the shared credentials file.
func WithProfile(name string) Option {
	return func(o *Options) {
		o.Profile = name
	}
}

// WithSharedCredentialsFiles overrides the shared credentials file paths.
func WithSharedCredentialsFiles(paths ...string) Option {
	return func(o *Options) {
		o.SharedCredentialsFiles = paths
	}
}

// WithSharedConfigFiles overrides the shared config file paths.
func WithSharedConfigFiles(paths ...string) Option {
	return func(o *Options) {
		o.SharedConfigFiles = paths
	}
}

// WithRegion sets an explicit region, taking precedence over AWS_REGION,
// AWS_DEFAULT_REGION, and any region found in the shared config files.
func WithRegion(region string) Option {
	return func(o *Options) {
		o.Region = region
	}
}

// WithBaseEndpoint overrides the service endpoint. Intended for tests and
// localstack-style deployments.
func WithBaseEndpoint(url string) Option {
	return func(o *Options) {
		o.BaseEndpoint = url
	}
}

// WithHTTPClient overrides the HTTP client used for service calls.
func WithHTTPClient(client config.HTTPClient) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// NewConfig resolves credentials and region per the documented precedence
// and returns a ready-to-use Config. Fails with *MissingCredentialsError
// when no source yields a usable key pair. Secret key material never
// appears in returned errors.
func NewConfig(ctx context.Context, opts ...Option) (*Config, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts := []func(*config.LoadOptions) error{}

	switch {
	case o.AccessKeyID != "" || o.SecretAccessKey != "":
		if o.AccessKeyID == "" || o.SecretAccessKey == "" {
			return nil, NewMissingCredentialsError("static credentials require both an access key id and a secret key")
		}
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, o.SessionToken),
		))
	case os.Getenv("AWS_ACCESS_KEY_ID") != "" && os.Getenv("AWS_SECRET_ACCESS_KEY") != "":
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				os.Getenv("AWS_ACCESS_KEY_ID"),
				os.Getenv("AWS_SECRET_ACCESS_KEY"),
				os.Getenv("AWS_SESSION_TOKEN"),
			),
		))
	case o.Profile != "":
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.Profile))
	}

	if len(o.SharedCredentialsFiles) > 0 {
		loadOpts = append(loadOpts, config.WithSharedCredentialsFiles(o.SharedCredentialsFiles))
	}
	if len(o.SharedConfigFiles) > 0 {
		loadOpts = append(loadOpts, config.WithSharedConfigFiles(o.SharedConfigFiles))
	}
	if region := resolveRegion(o); region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	if o.BaseEndpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.BaseEndpoint))
	}
	if o.HTTPClient != nil {
		loadOpts = append(loadOpts, config.WithHTTPClient(o.HTTPClient))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, NewMissingCredentialsError("config.LoadDefaultConfig: " + err.Error())
	}

	// verify a usable key pair up front rather than at first signing
	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, NewMissingCredentialsError("no usable credentials resolved from arguments, environment, or shared credentials file")
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return nil, NewMissingCredentialsError("resolved credentials are missing an access key id or secret key")
	}

	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	return &Config{Config: cfg}, nil
}

// resolveRegion applies explicit > AWS_REGION > AWS_DEFAULT_REGION. An
// empty result defers to the shared config files via the SDK loader.
func resolveRegion(o Options) string {
	if o.Region != "" {
		return o.Region
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}
	return os.Getenv("AWS_DEFAULT_REGION")
}
