package services

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kerbaras/nebulae/pkg/catalog"
	"github.com/kerbaras/nebulae/pkg/data"
	"github.com/kerbaras/nebulae/pkg/diagnostics"
	"github.com/kerbaras/nebulae/pkg/log"
	"github.com/kerbaras/nebulae/pkg/report"
	"github.com/kerbaras/nebulae/pkg/sources"
	"github.com/kerbaras/nebulae/pkg/utils"
)

// Selector picks which candidates to download, returning 0-based indices.
// The default prompts on the pipeline's input stream; the TUI front-end
// plugs in its own.
type Selector func(cands []data.ImageCandidate) []int

// Pipeline drives one full run: resolve the name, look up astrometry,
// search the archive, download the chosen images and write the report.
type Pipeline struct {
	Astrometry  *AstrometryService
	Composition *CompositionService
	Archive     sources.ImageArchive
	Downloader  *Downloader
	Report      *report.Writer
	MaxResults  int
	Conditions  bool
	Select      Selector

	In  io.Reader
	Out io.Writer
}

// Run executes the pipeline once for the given nebula name. Remote
// failures along the way degrade to fallbacks or notices; only a report
// write failure is returned as an error.
func (p *Pipeline) Run(name string) error {
	neb := data.Nebula{Name: name, Identifier: catalog.Resolve(name)}

	astro := p.Astrometry.Lookup(neb.Identifier)
	p.printAstro(astro)

	fmt.Fprintf(p.Out, "\n🔭 Searching NASA images for: %q\n", neb.Name)
	cands, err := p.Archive.Search(neb.Name, p.MaxResults)
	if err != nil {
		log.Warn("image search failed", "query", neb.Name, "error", err)
		cands = nil
	}
	if len(cands) == 0 {
		fmt.Fprintln(p.Out, "❌ No images found.")
		return nil
	}

	p.printCandidates(cands)

	sel := p.Select
	if sel == nil {
		sel = p.promptSelect
	}

	var downloaded []string
	for _, idx := range sel(cands) {
		cand := cands[idx]
		fmt.Fprintf(p.Out, "⬇️  Downloading: %s\n", Filename(cand))
		name, err := p.Downloader.Download(cand)
		if err != nil {
			log.Warn("image download failed", "title", cand.Title, "error", err)
			continue
		}
		fmt.Fprintf(p.Out, "💾 Saved as: %s\n", name)
		downloaded = append(downloaded, name)
	}

	comp := p.Composition.Estimate(neb.Identifier)

	var cond *data.Conditions
	if p.Conditions {
		c := diagnostics.Estimate()
		cond = &c
	}

	path, err := p.Report.Write(neb, astro, downloaded, comp, cond)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}
	fmt.Fprintf(p.Out, "\n📝 Report saved to: %s\n", path)
	return nil
}

func (p *Pipeline) printAstro(astro *data.AstroRecord) {
	if astro == nil {
		fmt.Fprintln(p.Out, "⚠️  No astrometric data found.")
		return
	}
	fmt.Fprintf(p.Out, "\n📍 Coordinates: RA = %s, DEC = %s\n", astro.RA, astro.Dec)
	if astro.HasDistance() {
		fmt.Fprintf(p.Out, "🌌 Estimated distance: %.1f light-years (%.0f pc)\n", *astro.DistLY, *astro.DistPC)
	} else {
		fmt.Fprintln(p.Out, "🌌 Distance not available.")
	}
}

func (p *Pipeline) printCandidates(cands []data.ImageCandidate) {
	fmt.Fprintln(p.Out, "\n✅ Results found:")
	for i, cand := range cands {
		fmt.Fprintf(p.Out, "\n[%d] %s\n", i+1, cand.Title)
		fmt.Fprintf(p.Out, "    📎 %s\n", cand.URL)
		fmt.Fprintf(p.Out, "    🗓️  Created: %s\n", cand.DateCreated)
		fmt.Fprintf(p.Out, "    📄 %s\n", truncate(cand.Description, 120))
	}
}

// promptSelect reads one line of whitespace-separated 1-based indices.
// Out-of-range values are reported individually and skipped.
func (p *Pipeline) promptSelect(cands []data.ImageCandidate) []int {
	fmt.Fprint(p.Out, "\nEnter the numbers of the images to download (e.g. 1 3 5): ")
	scanner := bufio.NewScanner(p.In)
	if !scanner.Scan() {
		return nil
	}
	valid, outOfRange := utils.ParseSelection(scanner.Text(), len(cands))
	for _, n := range outOfRange {
		fmt.Fprintf(p.Out, "⚠️  Invalid index: %d\n", n)
	}
	return valid
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
