package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/internal/objstore"
	"github.com/orangehrm/oxd/pkg/snapshot"
)

func snapshotCmd(a *app) *cobra.Command {
	var (
		update bool
		ci     bool
		store  string
		suites []string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Check rendered markup against snapshot baselines",
		Long: `Render every component case and compare it with the stored baselines.

Missing baselines are written unless running in CI mode, where they fail
the run. Changed markup fails the run unless --update is given.

The store is a directory or an s3://bucket/prefix URL. It defaults to
"snapshot.store" or "snapshot.dir" in oxd.json.

Examples:
  oxd snapshot
  oxd snapshot --update
  oxd snapshot --ci --store s3://ui-baselines/oxd
  oxd snapshot --suite button`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if update && ci {
				return errors.New(errors.CodeInvalidArgs).
					WithDetail("--update and --ci cannot be combined")
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}

			mode := snapshot.ModeCheck
			switch {
			case update:
				mode = snapshot.ModeUpdate
			case ci, cfg.Snapshot.CI, os.Getenv("CI") != "":
				mode = snapshot.ModeCI
			}
			if store == "" {
				store = cfg.SnapshotStore()
			}

			selected, err := selectSuites(suites)
			if err != nil {
				return err
			}
			return runSnapshot(cmd, a, store, mode, selected)
		},
	}

	cmd.Flags().BoolVarP(&update, "update", "u", false, "Rewrite changed baselines and drop obsolete ones")
	cmd.Flags().BoolVar(&ci, "ci", false, "Fail on missing baselines instead of writing them")
	cmd.Flags().StringVar(&store, "store", "", "Baseline location: a directory or s3://bucket/prefix")
	cmd.Flags().StringSliceVar(&suites, "suite", nil, "Run only the named suites (repeatable)")

	return cmd
}

func selectSuites(names []string) ([]snapshot.Suite, error) {
	all := snapshot.DefaultSuites()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]snapshot.Suite, len(all))
	known := make([]string, len(all))
	for i, s := range all {
		byName[s.Name] = s
		known[i] = s.Name
	}
	out := make([]snapshot.Suite, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, errors.New(errors.CodeInvalidArgs).
				WithDetailf("unknown suite %q", n).
				WithSuggestion("Choose from: " + strings.Join(known, ", "))
		}
		out = append(out, s)
	}
	return out, nil
}

func runSnapshot(cmd *cobra.Command, a *app, location string, mode snapshot.Mode, suites []snapshot.Suite) error {
	var client objstore.API
	if strings.HasPrefix(location, "s3://") {
		c, err := a.newS3(cmd.Context(), a.cfg.S3)
		if err != nil {
			return errors.New(errors.CodeSnapshotStore).WithDetail(location).Wrap(err)
		}
		client = c
	}
	store, err := snapshot.Open(location, client)
	if err != nil {
		return errors.New(errors.CodeSnapshotLocation).WithDetail(location).Wrap(err)
	}

	a.info("%s mode, store %s", mode, store)
	report, err := snapshot.NewRunner(store, mode, a.logger).Run(cmd.Context(), suites...)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		mark := a.paint(successStyle, "✓")
		if !res.OK() {
			mark = a.paint(failStyle, "✗")
		}
		fmt.Fprintf(a.out, "%s %-10s %s\n", mark, res.Suite, a.paint(dimStyle, summary(res)))
		for _, m := range res.Failed {
			a.errorMsg("%s: %s", res.Suite, m.Name)
			fmt.Fprintln(a.errOut, m.Diff)
		}
		for _, name := range res.Missing {
			a.errorMsg("%s: %s has no baseline", res.Suite, name)
		}
		for _, name := range res.Obsolete {
			a.warn("%s: %s is not produced by any case", res.Suite, name)
		}
	}

	passed, written, updated, failed := report.Totals()
	if err := report.Err(); err != nil {
		return err
	}
	a.success("%d passed, %d written, %d updated, %d failed", passed, written, updated, failed)
	return nil
}

func summary(res snapshot.Result) string {
	parts := []string{fmt.Sprintf("%d passed", len(res.Passed))}
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(len(res.Written), "written")
	add(len(res.Updated), "updated")
	add(len(res.Removed), "removed")
	add(len(res.Failed), "failed")
	add(len(res.Missing), "missing")
	return strings.Join(parts, ", ")
}
