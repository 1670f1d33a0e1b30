package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/config"
	"github.com/Tiliavir/studyhub/internal/render"
)

// newApp loads the config and builds a session whose notices go to the
// command's stderr.
func newApp(cmd *cobra.Command) (*app.App, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.FilePath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	render.ApplyTheme(cfg.Appearance.Theme)

	errOut := cmd.ErrOrStderr()
	return app.New(cfg,
		app.WithConfigPath(path),
		app.WithNoticeSink(func(n app.Notice) {
			fmt.Fprintln(errOut, render.Notice(n))
		}),
	), nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", s)
	}
	return id, nil
}
