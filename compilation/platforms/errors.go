package platforms

import "github.com/pkg/errors"

// ErrCompilationFailed indicates the compiler toolchain failed to compile a source file.
var ErrCompilationFailed = errors.New("compilation failed")

// ErrToolchainFailed indicates the compiler version manager failed to list or install compiler versions.
var ErrToolchainFailed = errors.New("compiler toolchain failed")
