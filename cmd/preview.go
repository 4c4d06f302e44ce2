package cmd

import (
	"os"
	"path/filepath"

	"github.com/foomo/keel"
	"github.com/foomo/keel/net/http/middleware"
	"github.com/foomo/keel/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pagemint/pagemint/pkg/handler"
	"github.com/pagemint/pagemint/render"
)

func NewPreviewCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a rendered bundle locally with SPA fallback and the click beacon endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := dirFlag(v)
			if dir == "" {
				return errors.New("--dir is required")
			}
			if _, err := os.Stat(filepath.Join(dir, render.FileHTML)); err != nil {
				return errors.Wrap(err, "bundle directory is missing index.html")
			}

			svr := keel.NewServer(
				keel.WithHTTPPrometheusService(servicePrometheusEnabledFlag(v)),
				keel.WithHTTPHealthzService(serviceHealthzEnabledFlag(v)),
				keel.WithPrometheusMeter(servicePrometheusEnabledFlag(v)),
			)

			l := svr.Logger()

			svr.AddServices(
				service.NewHTTP(l.Named("svc.http"), "http", addressFlag(v),
					handler.NewPreview(l.Named("inst.handler"), dir),
					middleware.Telemetry(),
					middleware.Logger(),
					middleware.GZip(),
					middleware.Recover(),
				),
			)

			svr.Run()
			return nil
		},
	}

	flags := cmd.Flags()
	addAddressFlag(flags, v)
	addDirFlag(flags, v)
	addServiceHealthzEnabledFlag(flags, v)
	addServicePrometheusEnabledFlag(flags, v)

	return cmd
}
