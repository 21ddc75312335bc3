package clientfakes

import (
	"context"
	"sync"

	"github.com/bit-orbit/oauth/clients"
	"github.com/bit-orbit/oauth/principal"
)

// IssueCall records one CreateIssue invocation.
type IssueCall struct {
	AccessToken string
	Owner       string
	Repo        string
	Issue       clients.Issue
}

// FakeGitHub is an in-memory stand-in for the GitHub API used in tests.
type FakeGitHub struct {
	mu sync.Mutex

	ProfileResult principal.Profile
	ProfileErr    error
	CreateErr     error

	issueCalls []IssueCall
}

var _ clients.GitHubAPI = (*FakeGitHub)(nil)

// NewFakeGitHub creates a fake GitHub API client
func NewFakeGitHub() *FakeGitHub {
	return &FakeGitHub{}
}

// Profile returns the configured profile or error.
func (f *FakeGitHub) Profile(_ context.Context, _ string) (principal.Profile, error) {
	if f.ProfileErr != nil {
		return principal.Profile{}, f.ProfileErr
	}
	return f.ProfileResult, nil
}

// CreateIssue records the call and returns the configured error.
func (f *FakeGitHub) CreateIssue(_ context.Context, accessToken, owner, repo string, issue clients.Issue) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateErr != nil {
		return f.CreateErr
	}

	f.issueCalls = append(f.issueCalls, IssueCall{
		AccessToken: accessToken,
		Owner:       owner,
		Repo:        repo,
		Issue:       issue,
	})
	return nil
}

// IssueCalls returns a copy of the recorded CreateIssue calls.
func (f *FakeGitHub) IssueCalls() []IssueCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	calls := make([]IssueCall, len(f.issueCalls))
	copy(calls, f.issueCalls)
	return calls
}
