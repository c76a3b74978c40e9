package tools

import "github.com/ghscout/ghscout/internal/github"

// Registry returns all tool definitions wired against the given GitHub client.
func Registry(gh *github.Client) []ToolDefinition {
	return []ToolDefinition{
		GetUserDataDefinition(gh),
		GetRepositoryDataDefinition(gh),
		GetCommitHistoryDefinition(gh),
		GetPullRequestDiffDefinition(gh),
	}
}
