package cloud

import "context"

// Identity is the adapter surface the endpoints program against. It exists
// so tests can substitute a double for the real IAM/CodeCommit clients.
type Identity interface {
	GetUser(ctx context.Context, userName string) (*RemoteUser, error)
	CreateUser(ctx context.Context, userName string) (*RemoteUser, error)
	DeleteUser(ctx context.Context, userName string) error
	CreateLoginProfile(ctx context.Context, userName, password string) error
	DeleteLoginProfile(ctx context.Context, userName string) error
	CreateAccessKey(ctx context.Context, userName string) (*AccessKey, error)
	DeleteAccessKey(ctx context.Context, userName, accessKeyID string) error

	GetGroup(ctx context.Context, groupName string) (*RemoteGroup, error)
	CreateGroup(ctx context.Context, groupName string) (*RemoteGroup, error)
	DeleteGroup(ctx context.Context, groupName string) error
	AddUserToGroup(ctx context.Context, userName, groupName string) error
	RemoveUserFromGroup(ctx context.Context, userName, groupName string) error
	AttachGroupPolicy(ctx context.Context, groupName, policyArn string) error
	DetachGroupPolicy(ctx context.Context, groupName, policyArn string) error

	CreatePolicy(ctx context.Context, policyName, document string) (*RemotePolicy, error)
	GetPolicy(ctx context.Context, policyArn string) (*RemotePolicy, error)
	DeletePolicy(ctx context.Context, policyArn string) error

	CreateRepository(ctx context.Context, repoName, description string, tags map[string]string) (*RemoteRepository, error)
	DeleteRepository(ctx context.Context, repoName string) error
}

// Ensure IdentityAdapter implements Identity
var _ Identity = (*IdentityAdapter)(nil)
