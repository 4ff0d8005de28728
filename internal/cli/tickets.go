package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newTicketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tickets",
		Short: "List your confirmed tickets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}

			tickets, err := client.MyTickets(cmd.Context())
			if err != nil {
				return err
			}
			if len(tickets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tickets yet. Book an event with `shadowevents book`.")
				return nil
			}
			renderTicketTable(cmd.OutOrStdout(), tickets)
			return nil
		},
	}
}
