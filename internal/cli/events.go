package cli

import (
	"fmt"

	"shadow-events-cli/internal/api"

	"github.com/spf13/cobra"
)

func (a *App) newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse upcoming events",
	}
	cmd.AddCommand(a.newEventsListCmd(), a.newEventsShowCmd())
	return cmd
}

func (a *App) newEventsListCmd() *cobra.Command {
	var params api.ListEventsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.anonClient()
			if err != nil {
				return err
			}

			page, err := client.ListEvents(cmd.Context(), params)
			if err != nil {
				return err
			}
			if len(page.Content) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No events found.")
				return nil
			}

			renderEventTable(cmd.OutOrStdout(), page.Content)
			renderPageFooter(cmd.OutOrStdout(), page.Number, page.TotalPages, page.TotalElements)
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&params.Size, "size", 5, "events per page")
	cmd.Flags().StringVar(&params.Search, "search", "", "filter by title")
	cmd.Flags().StringVar(&params.Category, "category", "", "filter by category")
	return cmd
}

func (a *App) newEventsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show one event in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.anonClient()
			if err != nil {
				return err
			}

			event, err := client.GetEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", event.Title)
			fmt.Fprintf(out, "%s\n\n", event.Description)
			fmt.Fprintf(out, "Location:  %s\n", event.Location)
			fmt.Fprintf(out, "Starts:    %s\n", event.StartTime.Format(timeLayout))
			fmt.Fprintf(out, "Ends:      %s\n", event.EndTime.Format(timeLayout))
			fmt.Fprintf(out, "Category:  %s\n", event.Category)
			fmt.Fprintf(out, "Price:     %.2f\n", event.Price)
			fmt.Fprintf(out, "Capacity:  %d\n", event.MaxAttendees)
			return nil
		},
	}
}
