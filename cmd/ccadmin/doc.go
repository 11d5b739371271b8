// Package main implements the ccadmin CLI, the entry point for the
// CodeCommit administration service.
//
// # Architecture
//
// The service is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Registry store interfaces and gorm implementations
//   - pkg/cloud: AWS IAM and CodeCommit adapter
//   - pkg/policydoc: Generated IAM policy document templates
//   - pkg/token: Signed access token issuance and verification
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Run database migrations
//	ccadmin db migrate
//
//	# Start the server
//	ccadmin server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - AWS_REGION / AWS_PROFILE: standard AWS SDK configuration
//   - CCADMIN_TOKEN_SECRET: shared secret for signing access tokens
//   - CCADMIN_TOKEN_TTL: token lifetime in seconds
//   - CCADMIN_TEMPLATE_PATH: directory of policy template overrides
//   - CCADMIN_LOG_LEVEL: log level (debug enables SQL logging)
//   - PORT: server port (default: 8000)
package main
