package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/styled/pkg/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		outDir string
		bucket string
		prefix string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the gallery",
		Long: `Render the gallery to index.html and the computed styles to styles.json,
and upload both to the bucket in styled.yaml.

Credentials are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
With --out the files are written to a local directory instead.

Examples:
  styled publish
  styled publish --bucket design-system --prefix v2/
  styled publish --out ./dist`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, cfg, err := a.registry()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}

			var client publish.ObjectPutter
			if outDir != "" {
				client = publish.DirPutter{Root: outDir}
				if cfg.Publish.Bucket == "" {
					cfg.Publish.Bucket = outDir
				}
			} else {
				if err := cfg.ValidatePublish(); err != nil {
					return err
				}
				client = publish.NewS3Client(cfg.Publish)
			}

			p := publish.New(client, publish.Options{
				Bucket: cfg.Publish.Bucket,
				Prefix: cfg.Publish.Prefix,
				Title:  title,
				Logger: a.logger.With("component", "publish"),
			})
			objects, err := p.Publish(cmd.Context(), reg)
			if err != nil {
				return err
			}

			a.success("Published %d objects to %s", len(objects), cfg.Publish.Bucket)
			for _, o := range objects {
				a.info("%s (%d bytes)", o.Key, o.Size)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write to a local directory instead of S3")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket (default from styled.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from styled.yaml)")
	cmd.Flags().StringVar(&title, "title", "styled", "Gallery title")
	return cmd
}
