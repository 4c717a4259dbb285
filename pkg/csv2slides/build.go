package csv2slides

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/charts"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/framework"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/semantics"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/slides"
)

// Build generates the slideshow into buildDir.
//
// All inputs are read and the page is rendered before anything is written.
// A failure after that point leaves buildDir partially populated; builds are
// expected to be re-run from scratch.
func Build(ctx context.Context, buildDir string, opts Options) error {
	logger := opts.logger()

	for _, path := range []string{opts.CSVInput, opts.Semantics, opts.Slides} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
	}

	table, err := parser.LoadTable(opts.CSVInput)
	if err != nil {
		return NewBuildError(StageTable, err)
	}
	logger.Debug("table loaded", "path", opts.CSVInput, "fields", table.FieldCount(), "records", table.RecordCount())

	bindings, err := parser.LoadDeclarations(opts.Semantics)
	if err != nil {
		return NewBuildError(StageSemantics, err)
	}
	resolver, err := semantics.NewResolver(table, bindings)
	if err != nil {
		return NewBuildError(StageSemantics, err)
	}

	deck, err := parser.LoadSlides(opts.Slides)
	if err != nil {
		return NewBuildError(StageSlides, err)
	}
	slideList, err := slides.Assemble(deck, table, opts.CSVPublic)
	if err != nil {
		return NewBuildError(StageSlides, err)
	}
	slidesHTML, err := slides.NewRenderer(table, resolver).RenderSlides(slideList)
	if err != nil {
		return NewBuildError(StageSlides, err)
	}

	tmpl, err := loadTemplate(opts.Template)
	if err != nil {
		return NewBuildError(StageTemplate, err)
	}
	page, err := RenderPage(tmpl, deck.Title, slidesHTML)
	if err != nil {
		return NewBuildError(StageTemplate, err)
	}

	logger.Info("building", "dir", buildDir, "title", deck.Title, "slides", len(slideList))

	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return NewBuildError(StageCopy, err)
	}
	if err := copyFile(opts.CSVInput, filepath.Join(buildDir, opts.CSVPublic)); err != nil {
		return NewBuildError(StageCopy, err)
	}

	if !opts.SkipFramework {
		fwCfg := opts.Framework
		if fwCfg.Logger == nil {
			fwCfg.Logger = logger
		}
		if err := framework.NewFetcher(fwCfg).Fetch(ctx, buildDir); err != nil {
			return NewBuildError(StageFramework, err)
		}
	}

	if err := os.WriteFile(filepath.Join(buildDir, PageFileName), []byte(page), 0644); err != nil {
		return NewBuildError(StagePage, err)
	}

	renderer := charts.NewRenderer(table, resolver, charts.Config{
		Dir:    buildDir,
		Drawer: opts.Drawer,
		Logger: logger,
	})
	written, err := renderer.RenderAll()
	if err != nil {
		return NewBuildError(StageCharts, err)
	}

	logger.Info("build complete", "dir", buildDir, "charts", len(written))
	return nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
