// Package store provides storage abstractions for the registry database.
//
// This package defines interfaces for the row-level operations the server
// endpoints need, allowing the endpoints to be decoupled from the specific
// database implementation. This enables easier testing with mocks and
// potential support for different storage backends.
//
// # Available Stores
//
//   - UsersStore: user rows and cached IAM credentials
//   - TeamsStore: team rows plus member and policy association rows
//   - ProjectsStore: project rows plus team association rows
//   - ReposStore: repository rows and ARN resolution
//   - PoliciesStore: generated policy rows
//
// # Usage
//
//	users := gorm.NewUsersStore(db)
//	user, err := users.GetUserByEmail("tom@nwcdcloud.cn")
//	if err != nil {
//	    if errors.Is(err, store.ErrUserNotFound) {
//	        // Handle not found
//	    }
//	}
package store
