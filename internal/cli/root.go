package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() (*cobra.Command, error) {
	app, err := NewApp()
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:           "shadowevents",
		Short:         "Command-line client for the Shadow Events ticketing platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		app.newSignupCmd(),
		app.newLoginCmd(),
		app.newLogoutCmd(),
		app.newEventsCmd(),
		app.newBookCmd(),
		app.newTicketsCmd(),
		app.newAdminCmd(),
	)
	return root, nil
}
