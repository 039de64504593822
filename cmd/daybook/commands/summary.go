package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook/core/internal/application/store"
)

// NewSummaryCommand creates the summary dashboard command
func NewSummaryCommand() *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the day's overview",
		Run: func(cmd *cobra.Command, args []string) {
			date, _ := cmd.Flags().GetString("date")

			withStore(func(s *store.Store) error {
				ov := s.Overview(date)

				fmt.Printf("Overview for %s\n\n", ov.Date)
				fmt.Printf("  🗂️ %d tasks   📁 %d projects   📝 %d notes\n", ov.TasksToday, ov.ProjectsToday, ov.NotesToday)

				if len(ov.Upcoming) > 0 {
					fmt.Println("\nUpcoming:")
					for _, item := range ov.Upcoming {
						icon := "🗂️"
						switch item.Kind {
						case "project":
							icon = "📁"
						case "note":
							icon = "📝"
						}
						fmt.Printf("  %s %s  %s\n", icon, item.Date, item.Title)
					}
				}
				return nil
			})
		},
	}
	summaryCmd.Flags().String("date", today(), "Day to summarize, YYYY-MM-DD")

	return summaryCmd
}
