package tools

import (
	"context"
	"encoding/json"

	"github.com/ghscout/ghscout/internal/github"
)

type GetRepositoryDataInput struct {
	Username string `json:"username" jsonschema_description:"GitHub username (login) whose repositories to list."`
	Token    string `json:"token" jsonschema_description:"GitHub access token used for the request."`
}

var GetRepositoryDataInputSchema = GenerateSchema[GetRepositoryDataInput]()

// GetRepositoryDataDefinition returns the getRepositoryData descriptor bound to gh.
func GetRepositoryDataDefinition(gh *github.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "getRepositoryData",
		Description: "List a GitHub user's public repositories with their metadata.",
		InputSchema: GetRepositoryDataInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in GetRepositoryDataInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			return gh.GetRepositoryData(ctx, in.Token, in.Username)
		},
	}
}
