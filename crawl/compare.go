package crawl

import "github.com/fwojciec/docbundle"

// RenderGainThreshold is how much longer the rendered extraction must be,
// relative to the plain one, before rendering is considered worth it.
const RenderGainThreshold = 1.5

// ContentDiffers compares the Markdown extracted from a plainly fetched page
// with the Markdown extracted from the same page rendered in a browser.
// It returns true if the rendered content is more than 50% longer, which
// means scripts add documentation the plain fetch misses.
//
// A plain page that fails to extract counts as needing rendering; a rendered
// page that fails to extract never does.
func ContentDiffers(plainHTML, renderedHTML, crate string, extractor docbundle.Extractor) bool {
	rendered, err := extractor.Extract(renderedHTML, crate)
	if err != nil {
		return false
	}

	plain, err := extractor.Extract(plainHTML, crate)
	if err != nil {
		return len(rendered) > 0
	}

	if len(plain) == 0 {
		return len(rendered) > 0
	}
	return float64(len(rendered)) > float64(len(plain))*RenderGainThreshold
}
