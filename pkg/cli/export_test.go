package cli

// LoadDotEnv is exported for testing
var LoadDotEnv = loadDotEnv
