package slack

// Export internal functions for testing
var (
	ToDirectoryUser = toDirectoryUser
)
