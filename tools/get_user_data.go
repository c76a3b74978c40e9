package tools

import (
	"context"
	"encoding/json"

	"github.com/ghscout/ghscout/internal/github"
)

type GetUserDataInput struct {
	Username string `json:"username" jsonschema_description:"GitHub username (login) to look up."`
	Token    string `json:"token" jsonschema_description:"GitHub access token used for the request."`
}

var GetUserDataInputSchema = GenerateSchema[GetUserDataInput]()

// GetUserDataDefinition returns the getUserData descriptor bound to gh.
func GetUserDataDefinition(gh *github.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "getUserData",
		Description: "Fetch a GitHub user's public profile data (name, bio, follower counts, etc.) for a given username.",
		InputSchema: GetUserDataInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in GetUserDataInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			return gh.GetUserData(ctx, in.Token, in.Username)
		},
	}
}
