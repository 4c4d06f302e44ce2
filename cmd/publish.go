package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spf13/viper"

	"github.com/pagemint/pagemint/hosting"
	"github.com/pagemint/pagemint/pkg/store"
	"github.com/pagemint/pagemint/publish"
	"github.com/pagemint/pagemint/render"
)

func NewPublishCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render a site bundle and deploy it to the hosting provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L()

			provider, err := newProvider(l, v)
			if err != nil {
				return err
			}
			pipeline := publish.New(l, provider,
				publish.WithPollInterval(pollIntervalFlag(v)),
			)

			raw, err := loadContent(contentFlag(v))
			if err != nil {
				return err
			}

			result, err := pipeline.Run(cmd.Context(), publish.Request{
				RawContent:   raw,
				Fallback:     buildFallbackContext(v),
				Template:     render.TemplateID(templateFlag(v)),
				Links:        buildLinks(v),
				SiteName:     siteNameFlag(v),
				SiteID:       siteIDFlag(v),
				CustomDomain: customDomainFlag(v),
			})
			if err != nil {
				return err
			}

			if bucket := archiveBucketFlag(v); bucket != "" {
				if err := archiveBundle(cmd.Context(), v, result); err != nil {
					// the deploy itself succeeded, the archive is an audit copy
					l.Warn("failed to archive bundle", zap.Error(err))
				}
			}

			deployment := result.Deployment
			if waitFlag(v) {
				ctx, cancel := context.WithTimeout(cmd.Context(), waitTimeoutFlag(v))
				defer cancel()
				final, waitErr := pipeline.AwaitReady(ctx, deployment.ID)
				switch {
				case waitErr == nil:
					deployment = final
				case errors.Is(waitErr, context.DeadlineExceeded):
					l.Warn("deployment still building after timeout, reconcile with the status command",
						zap.String("deployID", deployment.ID),
					)
					if final != nil {
						deployment = final
					}
				default:
					return waitErr
				}
			}

			return printJSON(struct {
				Site         *hosting.Site       `json:"site"`
				Deployment   *hosting.Deployment `json:"deployment"`
				FallbackUsed bool                `json:"fallbackContentUsed"`
			}{
				Site:         result.Site,
				Deployment:   deployment,
				FallbackUsed: result.FallbackUsed,
			})
		},
	}

	flags := cmd.Flags()
	addContentFlag(flags, v)
	addTemplateFlag(flags, v)
	addNicheFlag(flags, v)
	addAudienceFlag(flags, v)
	addPrimaryLinkFlag(flags, v)
	addSectionLinksFlag(flags, v)
	addSiteNameFlag(flags, v)
	addSiteIDFlag(flags, v)
	addCustomDomainFlag(flags, v)
	addNetlifyTokenFlag(flags, v)
	addNetlifyAPIURLFlag(flags, v)
	addDryRunFlag(flags, v)
	addWaitFlag(flags, v)
	addWaitTimeoutFlag(flags, v)
	addPollIntervalFlag(flags, v)
	addArchiveBucketFlag(flags, v)
	addArchivePrefixFlag(flags, v)

	return cmd
}

func archiveBundle(ctx context.Context, v *viper.Viper, result *publish.Result) error {
	storage, err := store.NewBlobStorage(ctx, archiveBucketFlag(v), archivePrefixFlag(v))
	if err != nil {
		return errors.Wrap(err, "failed to open archive bucket")
	}
	defer storage.Close()

	name := result.Site.Name
	if name == "" {
		name = result.Site.ID
	}
	return store.WriteBundle(ctx, storage, name+"/"+result.Deployment.ID, result.Bundle)
}
