package clients

import (
	"context"
	"fmt"
	"strconv"

	errs "github.com/bit-orbit/oauth/internal/errors"
	"github.com/bit-orbit/oauth/internal/utils"
	"github.com/bit-orbit/oauth/principal"
	gogithub "github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

// Issue is the content forwarded to the remote tracker. Never persisted
// locally; one remote issue is created per submission attempt.
type Issue struct {
	Title  string
	Body   string
	Labels []string
}

// ProfileFetcher retrieves the authenticated user's profile using a delegated
// access token.
type ProfileFetcher interface {
	Profile(ctx context.Context, accessToken string) (principal.Profile, error)
}

// IssueCreator creates one issue in the given repository, authenticated with
// the submitting user's delegated access token.
type IssueCreator interface {
	CreateIssue(ctx context.Context, accessToken, owner, repo string, issue Issue) error
}

// GitHubAPI combines the two capabilities the backend needs from GitHub.
type GitHubAPI interface {
	ProfileFetcher
	IssueCreator
}

// GitHub talks to the GitHub REST API. Every call is authenticated with a
// per-user token; there is no system-wide credential.
type GitHub struct{}

var _ GitHubAPI = GitHub{}

// NewGitHub creates a GitHub API client
func NewGitHub() GitHub {
	return GitHub{}
}

// apiClient builds a REST client authenticated with the given delegated token.
func (GitHub) apiClient(ctx context.Context, accessToken string) *gogithub.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return gogithub.NewClient(oauth2.NewClient(ctx, ts))
}

// Profile fetches the token owner's profile.
func (g GitHub) Profile(ctx context.Context, accessToken string) (principal.Profile, error) {
	if accessToken == "" {
		return principal.Profile{}, errs.ErrMissingToken
	}

	user, _, err := g.apiClient(ctx, accessToken).Users.Get(ctx, "")
	if err != nil {
		return principal.Profile{}, errs.Wrapf(err, "[clients Profile] fetch user")
	}

	return principal.Profile{
		ID:          strconv.FormatInt(user.GetID(), 10),
		Username:    user.GetLogin(),
		DisplayName: user.GetName(),
	}, nil
}

// CreateIssue creates one issue in owner/repo on the token owner's behalf.
func (g GitHub) CreateIssue(ctx context.Context, accessToken, owner, repo string, issue Issue) error {
	if accessToken == "" {
		return errs.ErrMissingToken
	}
	if owner == "" || repo == "" {
		return fmt.Errorf("[clients CreateIssue] owner and repo are required")
	}

	request := &gogithub.IssueRequest{
		Title:  utils.Ptr(issue.Title),
		Body:   utils.Ptr(issue.Body),
		Labels: utils.Ptr(issue.Labels),
	}

	if _, _, err := g.apiClient(ctx, accessToken).Issues.Create(ctx, owner, repo, request); err != nil {
		return errs.Wrapf(err, "[clients CreateIssue] create issue")
	}
	return nil
}
