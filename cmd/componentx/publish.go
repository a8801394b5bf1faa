package main

import (
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/componentx/pkg/stylestore"
)

func publishCmd(opts *globalOptions) *cobra.Command {
	var (
		bucket       string
		prefix       string
		region       string
		cacheControl string
	)

	cmd := &cobra.Command{
		Use:   "publish [file...]",
		Short: "Compile style files and upload them to S3",
		Long: `Compile style files and upload one object per component,
named <prefix><Component>-style.css.

Credentials come from the default AWS configuration chain
(environment, shared config files, instance roles).

Examples:
  componentx publish --bucket my-assets --prefix css/
  componentx publish styles/Card.style.json --bucket my-assets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if bucket == "" {
				bucket = cfg.Publish.Bucket
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = cfg.Publish.Prefix
			}
			if region == "" {
				region = cfg.Publish.Region
			}
			if bucket == "" {
				return usageError("no bucket: pass --bucket or set publish.bucket")
			}

			if len(args) == 0 {
				args, err = sourceFiles(cfg.StylesPath())
				if err != nil {
					return err
				}
			}
			reg, err := compileFiles(args, "", logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var loadOpts []func(*awsconfig.LoadOptions) error
			if region != "" {
				loadOpts = append(loadOpts, awsconfig.WithRegion(region))
			}
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
			if err != nil {
				return err
			}

			pub := stylestore.New(s3.NewFromConfig(awsCfg), bucket, prefix).WithLogger(logger)
			if cacheControl != "" {
				pub.WithCacheControl(cacheControl)
			}

			keys, err := pub.PublishAll(ctx, reg)
			if err != nil {
				return err
			}
			success("Published %d stylesheets to s3://%s (%s)", len(keys), bucket, awsCfg.Region)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target bucket (default from config)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Key prefix (default from config)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from config or AWS chain)")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header (default \""+stylestore.DefaultCacheControl+"\")")

	return cmd
}
