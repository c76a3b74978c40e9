package tools

import (
	"context"
	"encoding/json"

	"github.com/ghscout/ghscout/internal/github"
)

type GetCommitHistoryInput struct {
	Username string `json:"username" jsonschema_description:"Owner (login) of the repository."`
	RepoName string `json:"repoName" jsonschema_description:"Repository name to fetch commits from."`
	Token    string `json:"token" jsonschema_description:"GitHub access token used for the request."`
}

var GetCommitHistoryInputSchema = GenerateSchema[GetCommitHistoryInput]()

// GetCommitHistoryDefinition returns the getCommitHistory descriptor bound to gh.
func GetCommitHistoryDefinition(gh *github.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "getCommitHistory",
		Description: "Fetch the commit history of a repository owned by the given user.",
		InputSchema: GetCommitHistoryInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in GetCommitHistoryInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			return gh.GetCommitHistory(ctx, in.Token, in.Username, in.RepoName)
		},
	}
}
