package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook/core/internal/application/store"
)

func finishedAt(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

// NewFinishedCommand creates the finished-archive command
func NewFinishedCommand() *cobra.Command {
	finishedCmd := &cobra.Command{
		Use:   "finished",
		Short: "Finished archive commands",
		Long:  "List and delete finished items. Items older than the retention window are hidden.",
	}

	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List finished tasks",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				finished := s.FinishedTasks()
				if len(finished) == 0 {
					fmt.Println("No finished tasks")
					return nil
				}
				for _, f := range finished {
					fmt.Printf("%s  %s  %-30s  finished %s  %s\n", f.Category.Emoji(), f.Date, f.Title, finishedAt(f.FinishedAt), f.ID)
				}
				return nil
			})
		},
	}

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "List finished projects",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				finished := s.FinishedProjects()
				if len(finished) == 0 {
					fmt.Println("No finished projects")
					return nil
				}
				for _, f := range finished {
					fmt.Printf("📁 %s → %s  %-30s  finished %s  %s\n", f.StartDate, f.EndDate, f.Title, finishedAt(f.FinishedAt), f.ID)
				}
				return nil
			})
		},
	}

	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "List finished notes",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				finished := s.FinishedNotes()
				if len(finished) == 0 {
					fmt.Println("No finished notes")
					return nil
				}
				for _, f := range finished {
					fmt.Printf("📝 %s  %-30s  finished %s  %s\n", f.Date, f.Title, finishedAt(f.FinishedAt), f.ID)
				}
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <task|project|note> <id>",
		Short: "Delete an item from the finished archive",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			kind, id := args[0], args[1]
			withStore(func(s *store.Store) error {
				switch kind {
				case "task":
					if err := s.DeleteFinishedTask(id); err != nil {
						return err
					}
				case "project":
					if err := s.DeleteFinishedProject(id); err != nil {
						return err
					}
				case "note":
					if err := s.DeleteFinishedNote(id); err != nil {
						return err
					}
				default:
					return fmt.Errorf("unknown kind %q (task, project, note)", kind)
				}
				fmt.Printf("Deleted finished %s %s\n", kind, id)
				return nil
			})
		},
	}

	finishedCmd.AddCommand(tasksCmd, projectsCmd, notesCmd, deleteCmd)
	return finishedCmd
}
