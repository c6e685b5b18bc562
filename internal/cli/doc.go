// Package cli provides the hieroconv command-line interface. It builds
// the cobra command tree for the conversion, separation and evaluation
// subcommands and manages configuration through viper.
package cli
