//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the hl binary
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "bin/hl", "./cmd/hl")
}

// Install installs hl into GOBIN
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/hl")
}

// ldflags stamps internal/version from git state; failures leave the
// from-source defaults in place.
func ldflags() string {
	const pkg = "github.com/dkoosis/hl/internal/version"
	flags := ""
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil {
		flags += fmt.Sprintf(" -X %s.Version=%s", pkg, v)
	}
	if c, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil {
		flags += fmt.Sprintf(" -X %s.CommitHash=%s", pkg, c)
	}
	flags += fmt.Sprintf(" -X %s.BuildDate=%s", pkg, time.Now().UTC().Format(time.RFC3339))
	return flags
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}

// QA runs format, vet, lint, and build
func QA() error {
	mg.Deps(Lint.Format, Lint.Vet)

	if err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./..."); err != nil {
		if sh.CmdRan(err) {
			return fmt.Errorf("golangci-lint failed: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Warning: golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
	}

	if err := sh.RunV("go", "build", "./..."); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Format checks code formatting
func (Lint) Format() error {
	return sh.RunV("go", "fmt", "./...")
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}
