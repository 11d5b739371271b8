// Package model defines the GORM models for the registry database.
//
// Each administered entity keeps a local row alongside its remote IAM or
// CodeCommit counterpart, caching the remote identifiers (ARNs, clone URLs,
// access-key ids) so listings never need a round trip to the provider.
//
// # Core Models
//
//   - User: console users with their cached IAM credentials
//   - Team: IAM groups with a local lifecycle status
//   - Project: local-only grouping of repositories
//   - Repo: CodeCommit repositories with cached ARN and clone URLs
//   - Policy: generated IAM managed policies with their documents
//
// # Association Models
//
// Membership and attachment rows carry no independent lifecycle:
//
//   - TeamMember: user-to-team assignment
//   - TeamPolicy: policy-to-team attachment
//   - TeamProject: team-to-project grant
package model
