package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"shadow-events-cli/internal/api/dto/response"
)

const timeLayout = "2006-01-02 15:04"

func renderEventTable(w io.Writer, events []response.EventView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tSTART\tCATEGORY\tPRICE")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n",
			e.ID, e.Title, e.Location, e.StartTime.Format(timeLayout), e.Category, e.Price)
	}
	tw.Flush()
}

func renderTicketTable(w io.Writer, tickets []response.TicketView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKET\tEVENT\tLOCATION\tSTART\tATTENDEE")
	for _, t := range tickets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s <%s>\n",
			t.TicketID, t.EventTitle, t.Location, t.StartTime.Format(timeLayout), t.AttendeeName, t.AttendeeEmail)
	}
	tw.Flush()
}

func renderUserTable(w io.Writer, users []response.UserView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role)
	}
	tw.Flush()
}

func renderBookingTable(w io.Writer, bookings []response.BookingView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tATTENDEE\tEMAIL\tSTATUS\tBOOKED AT")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.AttendeeName, b.AttendeeEmail, b.Status, b.BookedAt.Format(timeLayout))
	}
	tw.Flush()
}

func renderPageFooter(w io.Writer, number, totalPages, totalElements int) {
	if totalPages > 1 {
		fmt.Fprintf(w, "\nPage %d of %d (%d total)\n", number+1, totalPages, totalElements)
	}
}
