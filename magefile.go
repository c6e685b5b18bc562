//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Build compiles the hieroconv binary.
func Build() error {
	return sh.Run("go", "build", "-o", "hieroconv", "./cmd/hieroconv")
}

// Test runs the full test suite.
func Test() error {
	return sh.Run("go", "test", "./...")
}

// Install installs hieroconv into GOBIN.
func Install() error {
	return sh.Run("go", "install", "./cmd/hieroconv")
}
