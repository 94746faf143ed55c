// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// CatalogOptions configures the catalog command.
type CatalogOptions struct {
	// JSON selects JSON output; otherwise YAML, or the format implied by
	// the Out extension.
	JSON bool
	// Out writes the document to a file instead of w.
	Out string
	// Highlighter colors the document on w; nil prints it as is.
	Highlighter *components.Highlighter
	// Source is the YAML document c was loaded from. YAML output reuses
	// it verbatim so comments survive.
	Source []byte
}

// HandleCatalog prints or exports the effective catalog.
func HandleCatalog(c *catalog.Catalog, opts CatalogOptions, w io.Writer) error {
	format := catalog.FormatYAML
	switch {
	case opts.JSON:
		format = catalog.FormatJSON
	case opts.Out != "":
		format = catalog.FormatForPath(opts.Out)
	}

	var buf bytes.Buffer
	if format == catalog.FormatYAML && len(opts.Source) > 0 {
		buf.Write(opts.Source)
	} else if err := c.Encode(&buf, format); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if opts.Out != "" {
		if err := util.AtomicWriteFile(opts.Out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.Out, err)
		}
		fmt.Fprintln(w, styles.RenderSuccess("wrote "+opts.Out))
		return nil
	}

	out := buf.String()
	if opts.Highlighter != nil {
		lang := "yaml"
		if format == catalog.FormatJSON {
			lang = "json"
		}
		out = opts.Highlighter.Highlight(out, lang)
	}
	_, err := io.WriteString(w, out)
	return err
}
