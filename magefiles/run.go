//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every test with the backend picked for this machine.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs every test on the portable scalar backend.
func (Test) Portable() error {
	fmt.Println("Forcing the portable backend...")
	_, err := executeCmd("go", withArgs("test", "-count=1", "./..."), withEnv("ANIMATH_NO_SIMD=1"), withStream())
	return err
}

// Runs the concurrent packages under the race detector.
func (Test) Race() error {
	mg.Deps(Build.Vet)
	_, err := executeCmd("go", withArgs("test", "-race", "./engine/core/...", "./engine/containers/...", "./engine/math/random/...", "./engine/scene/..."), withStream())
	return err
}

type Run mg.Namespace

// Evaluates the sample scene once.
func (Run) Eval() error {
	mg.Deps(Build.Cli)
	_, err := executeCmd("bin/animath", withArgs("eval", "engine/scene/testdata/basic.toml"), withStream())
	return err
}
