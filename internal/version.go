package internal

// Version is the current hieroconv version.
const Version = "0.1.0"
