package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orangehrm/oxd/internal/docs"
	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/internal/objstore"
)

func exportCmd(a *app) *cobra.Command {
	var stories []string

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write the docs site as static files",
		Long: `Export the documentation site to a directory that any static host can
serve. Story pages list their args in place of live controls.

Examples:
  oxd export ./site
  oxd export ./site --stories ./stories`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := a.docsServer(stories)
			if err != nil {
				return err
			}
			files, err := srv.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.success("Exported %d files to %s", len(files), args[0])
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&stories, "stories", nil, "Story directory (repeatable, default from oxd.json)")

	return cmd
}

func publishCmd(a *app) *cobra.Command {
	var (
		bucket  string
		prefix  string
		stories []string
		export  bool
	)

	cmd := &cobra.Command{
		Use:   "publish <dir>",
		Short: "Upload an exported docs site to S3",
		Long: `Upload every file under dir to an S3 bucket. With --export the site is
exported to dir first.

The bucket, prefix, region and endpoint default to the "s3" section of
oxd.json.

Examples:
  oxd publish ./site --bucket ui-docs --prefix oxd
  oxd publish ./site --export`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			srv, err := a.docsServer(stories)
			if err != nil {
				return err
			}
			if bucket == "" {
				bucket = a.cfg.S3.Bucket
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = a.cfg.S3.Prefix
			}
			if bucket == "" {
				return errors.New(errors.CodeBucketMissing).
					WithSuggestion("Pass --bucket or set s3.bucket in oxd.json")
			}

			if export {
				files, err := srv.Export(cmd.Context(), dir)
				if err != nil {
					return err
				}
				a.success("Exported %d files to %s", len(files), dir)
			} else if _, err := os.Stat(dir); err != nil {
				return errors.New(errors.CodePublish).
					WithDetailf("%s does not exist", dir).
					WithSuggestion("Run 'oxd export " + dir + "' first or pass --export").
					Wrap(err)
			}

			client, err := a.newS3(cmd.Context(), a.cfg.S3)
			if err != nil {
				return errors.New(errors.CodePublish).
					WithDetailf("connecting to s3://%s", bucket).
					Wrap(err)
			}
			b := objstore.NewBucket(client, bucket, prefix)
			keys, err := srv.Publish(cmd.Context(), b, dir)
			if err != nil {
				return err
			}
			a.success("Published %d objects to s3://%s/%s", len(keys), b.Name(), b.Prefix())
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from oxd.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from oxd.json)")
	cmd.Flags().StringSliceVar(&stories, "stories", nil, "Story directory (repeatable, default from oxd.json)")
	cmd.Flags().BoolVar(&export, "export", false, "Export the site to dir before uploading")

	return cmd
}

// docsServer builds a docs server over the loaded stories.
func (a *app) docsServer(dirs []string) (*docs.Server, error) {
	book, err := a.book(dirs)
	if err != nil {
		return nil, err
	}
	return docs.New(book, docs.OptionsFromConfig(a.cfg, a.logger)), nil
}
