// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jeranaias/termfolio/internal/catalog"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	// Path is the document to check; empty checks the embedded catalog.
	Path string
	// Watch re-validates after every change until ctx is done.
	Watch  bool
	Logger *slog.Logger
}

// HandleValidate loads and validates a catalog document, printing the
// outcome to w. Without Watch the load error is returned.
func HandleValidate(ctx context.Context, opts ValidateOptions, w io.Writer) error {
	name := opts.Path
	if name == "" {
		if opts.Watch {
			return NewUsageError("validate", "--watch needs a PATH")
		}
		name = "embedded catalog"
	}

	_, err := catalog.Load(opts.Path)
	if !opts.Watch {
		if err != nil {
			return err
		}
		fmt.Fprintln(w, styles.RenderSuccess(name+": valid"))
		return nil
	}

	reportValidation(w, name, err)

	watcher, err := catalog.NewWatcher(opts.Path, catalog.DefaultDebounce, opts.Logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	fmt.Fprintln(w, styles.RenderInfo("watching "+watcher.Path()+" (Ctrl+C to stop)"))
	return watcher.Watch(ctx, func(_ *catalog.Catalog, err error) {
		reportValidation(w, name, err)
	})
}

func reportValidation(w io.Writer, name string, err error) {
	var fieldErrs catalog.ValidationErrors
	if err == nil || !errors.As(err, &fieldErrs) {
		msg := name + ": valid"
		if err != nil {
			msg = fmt.Sprintf("%s: %v", name, err)
		}
		fmt.Fprintln(w, styles.RenderStatus(err == nil, msg))
		return
	}

	fmt.Fprintln(w, styles.RenderError(fmt.Sprintf("%s: %d problem(s)", name, len(fieldErrs))))
	for _, fe := range fieldErrs {
		fmt.Fprintf(w, "  %s\n", fe.Error())
	}
}
