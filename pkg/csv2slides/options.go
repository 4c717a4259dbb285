// Package csv2slides converts survey-style tabular data into a static HTML slideshow.
package csv2slides

import (
	"log/slog"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/charts"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/framework"
)

// Default input locations, relative to the working directory.
const (
	DefaultCSVInput  = "data.csv"
	DefaultCSVPublic = "data.csv"
	DefaultSemantics = "semantics.xml"
	DefaultSlides    = "slides.xml"
)

// PageFileName is the name of the generated page in the build directory.
const PageFileName = "index.html"

// Options configures a build.
type Options struct {
	// CSVInput is the path of the table (.csv or .xlsx).
	CSVInput string
	// CSVPublic is the file name the raw table is published under.
	CSVPublic string
	// Semantics is the path of the declarations document (.xml or .yaml).
	Semantics string
	// Slides is the path of the slide-definition document (.xml or .yaml).
	Slides string
	// Template is the path of the page template; empty uses the built-in template.
	Template string
	// SkipFramework disables fetching the presentation framework.
	SkipFramework bool
	// Framework configures the framework fetch.
	Framework framework.Config
	// Drawer draws chart images; nil uses the SVG pie drawer.
	Drawer charts.Drawer
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns options with the default input locations.
func DefaultOptions() Options {
	return Options{
		CSVInput:  DefaultCSVInput,
		CSVPublic: DefaultCSVPublic,
		Semantics: DefaultSemantics,
		Slides:    DefaultSlides,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
