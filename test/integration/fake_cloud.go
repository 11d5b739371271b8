package integration

import (
	"context"
	"fmt"
	"sync"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
)

// fakeCloud is an in-memory stand-in for the IAM/CodeCommit adapter so the
// suite can exercise the full HTTP surface without AWS credentials.
type fakeCloud struct {
	mu       sync.Mutex
	users    map[string]string // user name -> arn
	groups   map[string]string // group name -> arn
	policies map[string]string // policy arn -> name
	repos    map[string]string // repo name -> arn
}

var _ cloud.Identity = (*fakeCloud)(nil)

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		users:    make(map[string]string),
		groups:   make(map[string]string),
		policies: make(map[string]string),
		repos:    make(map[string]string),
	}
}

func (f *fakeCloud) GetUser(ctx context.Context, userName string) (*cloud.RemoteUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arn, ok := f.users[userName]
	if !ok {
		return nil, nil
	}
	return &cloud.RemoteUser{Arn: arn}, nil
}

func (f *fakeCloud) CreateUser(ctx context.Context, userName string) (*cloud.RemoteUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arn := "arn:aws-cn:iam::000000000000:user/" + userName
	f.users[userName] = arn
	return &cloud.RemoteUser{Arn: arn}, nil
}

func (f *fakeCloud) DeleteUser(ctx context.Context, userName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, userName)
	return nil
}

func (f *fakeCloud) CreateLoginProfile(ctx context.Context, userName, password string) error {
	return nil
}

func (f *fakeCloud) DeleteLoginProfile(ctx context.Context, userName string) error {
	return nil
}

func (f *fakeCloud) CreateAccessKey(ctx context.Context, userName string) (*cloud.AccessKey, error) {
	return &cloud.AccessKey{
		ID:     "AKIAFAKE" + fmt.Sprintf("%08d", len(userName)),
		Secret: "fake-secret-key",
	}, nil
}

func (f *fakeCloud) DeleteAccessKey(ctx context.Context, userName, accessKeyID string) error {
	return nil
}

func (f *fakeCloud) GetGroup(ctx context.Context, groupName string) (*cloud.RemoteGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arn, ok := f.groups[groupName]
	if !ok {
		return nil, nil
	}
	return &cloud.RemoteGroup{Arn: arn}, nil
}

func (f *fakeCloud) CreateGroup(ctx context.Context, groupName string) (*cloud.RemoteGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arn := "arn:aws-cn:iam::000000000000:group/" + groupName
	f.groups[groupName] = arn
	return &cloud.RemoteGroup{Arn: arn}, nil
}

func (f *fakeCloud) DeleteGroup(ctx context.Context, groupName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.groups, groupName)
	return nil
}

func (f *fakeCloud) AddUserToGroup(ctx context.Context, userName, groupName string) error {
	return nil
}

func (f *fakeCloud) RemoveUserFromGroup(ctx context.Context, userName, groupName string) error {
	return nil
}

func (f *fakeCloud) AttachGroupPolicy(ctx context.Context, groupName, policyArn string) error {
	return nil
}

func (f *fakeCloud) DetachGroupPolicy(ctx context.Context, groupName, policyArn string) error {
	return nil
}

func (f *fakeCloud) CreatePolicy(ctx context.Context, policyName, document string) (*cloud.RemotePolicy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arn := "arn:aws-cn:iam::000000000000:policy/" + policyName
	f.policies[arn] = policyName
	return &cloud.RemotePolicy{Arn: arn}, nil
}

func (f *fakeCloud) GetPolicy(ctx context.Context, policyArn string) (*cloud.RemotePolicy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.policies[policyArn]; !ok {
		return nil, nil
	}
	return &cloud.RemotePolicy{Arn: policyArn}, nil
}

func (f *fakeCloud) DeletePolicy(ctx context.Context, policyArn string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.policies, policyArn)
	return nil
}

func (f *fakeCloud) CreateRepository(ctx context.Context, repoName, description string, tags map[string]string) (*cloud.RemoteRepository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	arn := "arn:aws-cn:codecommit:cn-north-1:000000000000:" + repoName
	f.repos[repoName] = arn
	return &cloud.RemoteRepository{
		Arn:           arn,
		CloneURLHTTPS: "https://git-codecommit.cn-north-1.amazonaws.com.cn/v1/repos/" + repoName,
		CloneURLSSH:   "ssh://git-codecommit.cn-north-1.amazonaws.com.cn/v1/repos/" + repoName,
	}, nil
}

func (f *fakeCloud) DeleteRepository(ctx context.Context, repoName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.repos, repoName)
	return nil
}
