package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/publish"
)

func NewStatusCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "status <deployment-id>",
		Short: "Read the state of a deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L()

			provider, err := newProvider(l, v)
			if err != nil {
				return err
			}

			if !waitFlag(v) {
				deployment, err := provider.GetDeployment(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(deployment)
			}

			pipeline := publish.New(l, provider,
				publish.WithPollInterval(pollIntervalFlag(v)),
			)
			ctx, cancel := context.WithTimeout(cmd.Context(), waitTimeoutFlag(v))
			defer cancel()
			deployment, err := pipeline.AwaitReady(ctx, args[0])
			if errors.Is(err, context.DeadlineExceeded) {
				l.Warn("deployment still building after timeout", zap.String("deployID", args[0]))
				if deployment == nil {
					return err
				}
				return printJSON(deployment)
			}
			if err != nil {
				return err
			}
			return printJSON(deployment)
		},
	}

	flags := cmd.Flags()
	addNetlifyTokenFlag(flags, v)
	addNetlifyAPIURLFlag(flags, v)
	addDryRunFlag(flags, v)
	addWaitFlag(flags, v)
	addWaitTimeoutFlag(flags, v)
	addPollIntervalFlag(flags, v)

	return cmd
}
