package version

// Version is the current version of the raksha CLI
const Version = "0.1.0"
