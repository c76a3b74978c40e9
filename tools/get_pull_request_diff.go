package tools

import (
	"context"
	"encoding/json"

	"github.com/ghscout/ghscout/internal/github"
)

type GetPullRequestDiffInput struct {
	Username          string `json:"username" jsonschema_description:"Owner (login) of the repository."`
	RepoName          string `json:"repoName" jsonschema_description:"Repository name containing the pull request."`
	PullRequestNumber int    `json:"pullRequestNumber" jsonschema_description:"Number of the pull request to diff."`
	Token             string `json:"token" jsonschema_description:"GitHub access token used for the request."`
}

var GetPullRequestDiffInputSchema = GenerateSchema[GetPullRequestDiffInput]()

// GetPullRequestDiffDefinition returns the getPullRequestDiff descriptor bound to gh.
func GetPullRequestDiffDefinition(gh *github.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "getPullRequestDiff",
		Description: "Fetch the changed files of a pull request, including per-file patch text.",
		InputSchema: GetPullRequestDiffInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in GetPullRequestDiffInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			return gh.GetPullRequestDiff(ctx, in.Token, in.Username, in.RepoName, in.PullRequestNumber)
		},
	}
}
