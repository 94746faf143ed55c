// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// HandleConfig runs "config path", "config init" or "config show".
// cfg is the effective configuration; it is only read by show.
func HandleConfig(args Args, cfg *config.Config, hl *components.Highlighter, w io.Writer) error {
	path := args.ConfigPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	switch args.Subcommand {
	case "path":
		fmt.Fprintln(w, path)
		return nil

	case "init":
		if args.Path != "" {
			path = args.Path
		}
		return initConfig(path, args.Force, w)

	default:
		data, err := cfg.Encode()
		if err != nil {
			return err
		}
		out := string(data)
		if hl != nil {
			out = hl.Highlight(out, "toml")
		}
		fmt.Fprintf(w, "# effective configuration (file: %s)\n", path)
		_, err = io.WriteString(w, out)
		return err
	}
}

func initConfig(path string, force bool, w io.Writer) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.Default().Save(path); err != nil {
		return err
	}
	fmt.Fprintln(w, styles.RenderSuccess("wrote "+path))
	return nil
}
