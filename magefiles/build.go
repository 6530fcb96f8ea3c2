//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

var binDir = "bin"

// Builds the animath command into bin/.
func (Build) Cli() error {
	out := filepath.Join(binDir, "animath")
	if _, err := executeCmd("go", withArgs("build", "-o", out, "./cmd/animath"), withStream()); err != nil {
		return err
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Runs go vet over the module.
func (Build) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
