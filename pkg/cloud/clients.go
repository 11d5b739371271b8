package cloud

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// NewIdentityAdapterFromEnv builds an adapter over real IAM and CodeCommit
// clients using the default credential chain (environment, shared config,
// instance role).
func NewIdentityAdapterFromEnv(ctx context.Context) (*IdentityAdapter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewIdentityAdapter(iam.NewFromConfig(cfg), codecommit.NewFromConfig(cfg)), nil
}
