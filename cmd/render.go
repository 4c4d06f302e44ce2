package cmd

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/content"
	"github.com/pagemint/pagemint/hosting"
	"github.com/pagemint/pagemint/pkg/store"
	"github.com/pagemint/pagemint/render"
)

func NewRenderCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a site bundle to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L()

			raw, err := loadContent(contentFlag(v))
			if err != nil {
				return err
			}
			model, fallbackUsed := content.Validate(raw, buildFallbackContext(v))
			if fallbackUsed {
				l.Info("content did not validate, using fallback copy")
			}

			bundle, err := render.Render(model, render.TemplateID(templateFlag(v)), buildLinks(v))
			if err != nil {
				return errors.Wrap(err, "failed to render bundle")
			}

			storage, err := store.NewFilesystemStorage(outDirFlag(v))
			if err != nil {
				return errors.Wrap(err, "failed to open output directory")
			}
			name := hosting.NormalizeSiteName(siteNameFlag(v))
			if err := store.WriteBundle(cmd.Context(), storage, name, bundle); err != nil {
				return errors.Wrap(err, "failed to write bundle")
			}

			l.Info("rendered bundle",
				zap.String("template", templateFlag(v)),
				zap.Bool("fallbackContent", fallbackUsed),
				zap.String("dir", filepath.Join(outDirFlag(v), name)),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	addContentFlag(flags, v)
	addTemplateFlag(flags, v)
	addNicheFlag(flags, v)
	addAudienceFlag(flags, v)
	addPrimaryLinkFlag(flags, v)
	addSectionLinksFlag(flags, v)
	addOutDirFlag(flags, v)
	addSiteNameFlag(flags, v)

	return cmd
}
