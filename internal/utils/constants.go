package utils

const (
	// ApplicationName is the binary and configuration namespace.
	ApplicationName = "riptree"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// ConfigFileName is the file read from the global configuration directory.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the file read from the working directory.
	LocalConfigFileName = ".riptree.yaml"
	// GlobalConfigDirectoryName is created under the user's home directory.
	GlobalConfigDirectoryName = ".riptree"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes the fatal error logged by main.
	ApplicationExecutionFailedMessage = "riptree failed"
)
