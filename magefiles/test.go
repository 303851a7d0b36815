//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Test runs the full test suite.
func Test() error {
	return run("go", "test", "-tags", buildTags, "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return run("go", "vet", "-tags", buildTags, "./...")
}

// Demo builds the CLI and generates a sample article set into output/batches.
func Demo() error {
	mg.Deps(Build)
	return run("bin/"+binName, "generate",
		"--keywords", "vitamin d deficiency symptoms",
		"--images", "--faqs",
		"--output-dir", "output/batches")
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
