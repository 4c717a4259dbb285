package csv2slides

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates a missing input file.
var ErrFileNotFound = errors.New("file not found")

// Build stages reported by BuildError.
const (
	StageTable     = "table"
	StageSemantics = "semantics"
	StageSlides    = "slides"
	StageTemplate  = "template"
	StageCopy      = "copy"
	StageFramework = "framework"
	StagePage      = "page"
	StageCharts    = "charts"
)

// BuildError represents an error in one stage of a build.
type BuildError struct {
	Stage string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed at %s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(stage string, err error) *BuildError {
	return &BuildError{
		Stage: stage,
		Err:   err,
	}
}
