// Package tools defines the tool contracts and the GitHub lookup catalog.
//
// Includes:
//   - ToolDefinition: name, description, JSON parameter schema, handler.
//   - GenerateSchema[T](): derive the parameters object from Go structs.
//   - GitHub lookups: getUserData, getRepositoryData, getCommitHistory,
//     getPullRequestDiff (all read-only).
//   - Invariant: the catalog is fixed at startup and identical for every
//     prompt in a run; descriptors are pure data with no side effects.
package tools
