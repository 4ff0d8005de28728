package cli

import (
	"fmt"
	"text/tabwriter"

	"shadow-events-cli/internal/api"
	"shadow-events-cli/internal/api/dto/request"

	"github.com/spf13/cobra"
)

func (a *App) newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands (requires an admin account)",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.requireRole("admin")
		},
	}
	cmd.AddCommand(
		a.newAdminDashboardCmd(),
		a.newAdminUsersCmd(),
		a.newAdminEventsCmd(),
		a.newAdminBookingsCmd(),
	)
	return cmd
}

func (a *App) newAdminDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform totals and income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			stats, err := client.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Events\t%d\n", stats.TotalEvents)
			fmt.Fprintf(tw, "Users\t%d\n", stats.TotalUsers)
			fmt.Fprintf(tw, "Bookings\t%d\n", stats.TotalBookings)
			fmt.Fprintf(tw, "  confirmed\t%d\n", stats.ConfirmedCount)
			fmt.Fprintf(tw, "  pending\t%d\n", stats.PendingCount)
			fmt.Fprintf(tw, "  cancelled\t%d\n", stats.CancelledCount)
			fmt.Fprintf(tw, "Completion rate\t%.1f%%\n", stats.BookingCompletionRate)
			fmt.Fprintf(tw, "Total income\t%.2f\n", stats.TotalIncome)
			tw.Flush()

			if len(stats.IncomeOverTime) > 0 {
				fmt.Fprintln(out, "\nIncome over time:")
				tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, point := range stats.IncomeOverTime {
					fmt.Fprintf(tw, "  %s\t%.2f\n", point.Label, point.Income)
				}
				tw.Flush()
			}
			return nil
		},
	}
}

func (a *App) newAdminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			renderUserTable(cmd.OutOrStdout(), users)
			return nil
		},
	}
}

func (a *App) newAdminEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage events",
	}
	cmd.AddCommand(
		a.newAdminEventsListCmd(),
		a.newAdminEventsCreateCmd(),
		a.newAdminEventsUpdateCmd(),
		a.newAdminEventsDeleteCmd(),
	)
	return cmd
}

func (a *App) newAdminEventsListCmd() *cobra.Command {
	var (
		page, size           int
		name, location, date string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events with admin filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			result, err := client.AdminListEvents(cmd.Context(), api.AdminListEventsParams{
				Page:     page,
				Size:     size,
				Name:     name,
				Location: location,
				Date:     date,
			})
			if err != nil {
				return err
			}
			renderEventTable(cmd.OutOrStdout(), result.Content)
			renderPageFooter(cmd.OutOrStdout(), result.Number, result.TotalPages, result.TotalElements)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&size, "size", 10, "page size")
	cmd.Flags().StringVar(&name, "name", "", "filter by title")
	cmd.Flags().StringVar(&location, "location", "", "filter by location")
	cmd.Flags().StringVar(&date, "date", "", "filter by date (YYYY-MM-DD)")
	return cmd
}

func eventFlags(cmd *cobra.Command, event *request.SaveEventRequest) {
	cmd.Flags().StringVar(&event.Title, "title", "", "event title")
	cmd.Flags().StringVar(&event.Description, "description", "", "event description")
	cmd.Flags().StringVar(&event.Location, "location", "", "event location")
	cmd.Flags().StringVar(&event.ImgURL, "img-url", "", "poster image URL")
	cmd.Flags().StringVar(&event.StartTime, "start", "", "start time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&event.EndTime, "end", "", "end time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&event.Category, "category", "", "event category")
	cmd.Flags().Float64Var(&event.Price, "price", 0, "ticket price")
	cmd.Flags().IntVar(&event.MaxAttendees, "max-attendees", 0, "attendee capacity")
}

func (a *App) newAdminEventsCreateCmd() *cobra.Command {
	var event request.SaveEventRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			if err := client.CreateEvent(cmd.Context(), event); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Event created.")
			return nil
		},
	}

	eventFlags(cmd, &event)
	for _, flag := range []string{"title", "description", "location", "img-url", "start", "end", "category", "max-attendees"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}

func (a *App) newAdminEventsUpdateCmd() *cobra.Command {
	var event request.SaveEventRequest

	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Update an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			event.ID = args[0]
			if err := client.UpdateEvent(cmd.Context(), event); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Event updated.")
			return nil
		},
	}

	eventFlags(cmd, &event)
	return cmd
}

func (a *App) newAdminEventsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			if err := client.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Event deleted.")
			return nil
		},
	}
}

func (a *App) newAdminBookingsCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "bookings <event-id>",
		Short: "List the bookings taken for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.authedClient()
			if err != nil {
				return err
			}
			result, err := client.EventBookings(cmd.Context(), args[0], page, limit)
			if err != nil {
				return err
			}
			renderBookingTable(cmd.OutOrStdout(), result.Content)
			renderPageFooter(cmd.OutOrStdout(), result.Number, result.TotalPages, result.TotalElements)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	return cmd
}
