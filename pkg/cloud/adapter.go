// Package cloud wraps the IAM and CodeCommit clients behind an adapter with
// operations shaped for the registry: lookups report absence as a nil result
// instead of a service error, and outputs are flattened to the handful of
// fields the store caches (ARNs, key material, clone URLs).
package cloud

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codecommit"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/smithy-go"
)

// RemoteUser is the cached view of an IAM user.
type RemoteUser struct {
	Arn string
}

// AccessKey is a freshly minted IAM access key pair. The secret is only
// available at creation time.
type AccessKey struct {
	ID     string
	Secret string
}

// RemoteGroup is the cached view of an IAM group.
type RemoteGroup struct {
	Arn string
}

// RemotePolicy is the cached view of an IAM managed policy.
type RemotePolicy struct {
	Arn string
}

// RemoteRepository is the cached view of a CodeCommit repository.
type RemoteRepository struct {
	Arn           string
	CloneURLHTTPS string
	CloneURLSSH   string
}

// IdentityAdapter mediates all calls to IAM and CodeCommit.
type IdentityAdapter struct {
	iam        IAMAPI
	codecommit CodeCommitAPI
}

// NewIdentityAdapter creates an adapter over the given clients.
func NewIdentityAdapter(iamClient IAMAPI, codecommitClient CodeCommitAPI) *IdentityAdapter {
	return &IdentityAdapter{
		iam:        iamClient,
		codecommit: codecommitClient,
	}
}

// isNoSuchEntity reports whether err is the provider's not-found error for
// the entity being looked up.
func isNoSuchEntity(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchEntity", "RepositoryDoesNotExistException":
		return true
	}
	return false
}

// GetUser looks up an IAM user by name. A missing user is reported as
// (nil, nil) rather than an error.
func (a *IdentityAdapter) GetUser(ctx context.Context, userName string) (*RemoteUser, error) {
	out, err := a.iam.GetUser(ctx, &iam.GetUserInput{UserName: aws.String(userName)})
	if err != nil {
		if isNoSuchEntity(err) {
			return nil, nil
		}
		return nil, err
	}
	return &RemoteUser{Arn: aws.ToString(out.User.Arn)}, nil
}

// CreateUser creates an IAM user.
func (a *IdentityAdapter) CreateUser(ctx context.Context, userName string) (*RemoteUser, error) {
	out, err := a.iam.CreateUser(ctx, &iam.CreateUserInput{UserName: aws.String(userName)})
	if err != nil {
		return nil, err
	}
	return &RemoteUser{Arn: aws.ToString(out.User.Arn)}, nil
}

// DeleteUser removes an IAM user. The user must have no remaining login
// profile, access keys or group memberships.
func (a *IdentityAdapter) DeleteUser(ctx context.Context, userName string) error {
	_, err := a.iam.DeleteUser(ctx, &iam.DeleteUserInput{UserName: aws.String(userName)})
	return err
}

// CreateLoginProfile enables console sign-in for the user with the given
// password.
func (a *IdentityAdapter) CreateLoginProfile(ctx context.Context, userName, password string) error {
	_, err := a.iam.CreateLoginProfile(ctx, &iam.CreateLoginProfileInput{
		UserName: aws.String(userName),
		Password: aws.String(password),
	})
	return err
}

// DeleteLoginProfile disables console sign-in for the user.
func (a *IdentityAdapter) DeleteLoginProfile(ctx context.Context, userName string) error {
	_, err := a.iam.DeleteLoginProfile(ctx, &iam.DeleteLoginProfileInput{UserName: aws.String(userName)})
	return err
}

// CreateAccessKey mints an access key pair for the user.
func (a *IdentityAdapter) CreateAccessKey(ctx context.Context, userName string) (*AccessKey, error) {
	out, err := a.iam.CreateAccessKey(ctx, &iam.CreateAccessKeyInput{UserName: aws.String(userName)})
	if err != nil {
		return nil, err
	}
	return &AccessKey{
		ID:     aws.ToString(out.AccessKey.AccessKeyId),
		Secret: aws.ToString(out.AccessKey.SecretAccessKey),
	}, nil
}

// DeleteAccessKey removes the given access key from the user.
func (a *IdentityAdapter) DeleteAccessKey(ctx context.Context, userName, accessKeyID string) error {
	_, err := a.iam.DeleteAccessKey(ctx, &iam.DeleteAccessKeyInput{
		UserName:    aws.String(userName),
		AccessKeyId: aws.String(accessKeyID),
	})
	return err
}

// GetGroup looks up an IAM group by name. A missing group is reported as
// (nil, nil) rather than an error.
func (a *IdentityAdapter) GetGroup(ctx context.Context, groupName string) (*RemoteGroup, error) {
	out, err := a.iam.GetGroup(ctx, &iam.GetGroupInput{GroupName: aws.String(groupName)})
	if err != nil {
		if isNoSuchEntity(err) {
			return nil, nil
		}
		return nil, err
	}
	return &RemoteGroup{Arn: aws.ToString(out.Group.Arn)}, nil
}

// CreateGroup creates an IAM group.
func (a *IdentityAdapter) CreateGroup(ctx context.Context, groupName string) (*RemoteGroup, error) {
	out, err := a.iam.CreateGroup(ctx, &iam.CreateGroupInput{GroupName: aws.String(groupName)})
	if err != nil {
		return nil, err
	}
	return &RemoteGroup{Arn: aws.ToString(out.Group.Arn)}, nil
}

// DeleteGroup removes an IAM group. The group must have no remaining members
// or attached policies.
func (a *IdentityAdapter) DeleteGroup(ctx context.Context, groupName string) error {
	_, err := a.iam.DeleteGroup(ctx, &iam.DeleteGroupInput{GroupName: aws.String(groupName)})
	return err
}

// AddUserToGroup adds an IAM user to a group.
func (a *IdentityAdapter) AddUserToGroup(ctx context.Context, userName, groupName string) error {
	_, err := a.iam.AddUserToGroup(ctx, &iam.AddUserToGroupInput{
		UserName:  aws.String(userName),
		GroupName: aws.String(groupName),
	})
	return err
}

// RemoveUserFromGroup removes an IAM user from a group.
func (a *IdentityAdapter) RemoveUserFromGroup(ctx context.Context, userName, groupName string) error {
	_, err := a.iam.RemoveUserFromGroup(ctx, &iam.RemoveUserFromGroupInput{
		UserName:  aws.String(userName),
		GroupName: aws.String(groupName),
	})
	return err
}

// AttachGroupPolicy attaches a managed policy to a group.
func (a *IdentityAdapter) AttachGroupPolicy(ctx context.Context, groupName, policyArn string) error {
	_, err := a.iam.AttachGroupPolicy(ctx, &iam.AttachGroupPolicyInput{
		GroupName: aws.String(groupName),
		PolicyArn: aws.String(policyArn),
	})
	return err
}

// DetachGroupPolicy detaches a managed policy from a group.
func (a *IdentityAdapter) DetachGroupPolicy(ctx context.Context, groupName, policyArn string) error {
	_, err := a.iam.DetachGroupPolicy(ctx, &iam.DetachGroupPolicyInput{
		GroupName: aws.String(groupName),
		PolicyArn: aws.String(policyArn),
	})
	return err
}

// CreatePolicy creates a managed policy from the given JSON document.
func (a *IdentityAdapter) CreatePolicy(ctx context.Context, policyName, document string) (*RemotePolicy, error) {
	out, err := a.iam.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyName:     aws.String(policyName),
		PolicyDocument: aws.String(document),
	})
	if err != nil {
		return nil, err
	}
	return &RemotePolicy{Arn: aws.ToString(out.Policy.Arn)}, nil
}

// GetPolicy looks up a managed policy by ARN. A missing policy is reported as
// (nil, nil) rather than an error.
func (a *IdentityAdapter) GetPolicy(ctx context.Context, policyArn string) (*RemotePolicy, error) {
	out, err := a.iam.GetPolicy(ctx, &iam.GetPolicyInput{PolicyArn: aws.String(policyArn)})
	if err != nil {
		if isNoSuchEntity(err) {
			return nil, nil
		}
		return nil, err
	}
	return &RemotePolicy{Arn: aws.ToString(out.Policy.Arn)}, nil
}

// DeletePolicy removes a managed policy. The policy must be detached from all
// groups first.
func (a *IdentityAdapter) DeletePolicy(ctx context.Context, policyArn string) error {
	_, err := a.iam.DeletePolicy(ctx, &iam.DeletePolicyInput{PolicyArn: aws.String(policyArn)})
	return err
}

// CreateRepository creates a CodeCommit repository and returns its ARN and
// clone URLs.
func (a *IdentityAdapter) CreateRepository(ctx context.Context, repoName, description string, tags map[string]string) (*RemoteRepository, error) {
	input := &codecommit.CreateRepositoryInput{
		RepositoryName: aws.String(repoName),
		Tags:           tags,
	}
	if description != "" {
		input.RepositoryDescription = aws.String(description)
	}

	out, err := a.codecommit.CreateRepository(ctx, input)
	if err != nil {
		return nil, err
	}
	return &RemoteRepository{
		Arn:           aws.ToString(out.RepositoryMetadata.Arn),
		CloneURLHTTPS: aws.ToString(out.RepositoryMetadata.CloneUrlHttp),
		CloneURLSSH:   aws.ToString(out.RepositoryMetadata.CloneUrlSsh),
	}, nil
}

// DeleteRepository removes a CodeCommit repository. Deleting a repository
// that does not exist is not an error.
func (a *IdentityAdapter) DeleteRepository(ctx context.Context, repoName string) error {
	_, err := a.codecommit.DeleteRepository(ctx, &codecommit.DeleteRepositoryInput{
		RepositoryName: aws.String(repoName),
	})
	return err
}
