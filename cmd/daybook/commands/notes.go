package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook/core/internal/application/store"
	"github.com/daybook/core/internal/ports"
)

// NewNoteCommand creates the note management command
func NewNoteCommand() *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Note management commands",
		Long:  "Create, list, edit, delete and finish notes",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new note",
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			content, _ := cmd.Flags().GetString("content")
			date, _ := cmd.Flags().GetString("date")

			req := ports.CreateNoteRequest{
				Title:   title,
				Content: content,
				Date:    date,
			}
			if err := validate.Struct(req); err != nil {
				fmt.Printf("Invalid note: %v\n", validationError(err))
				return
			}

			withStore(func(s *store.Store) error {
				note, err := s.AddNote(req)
				if err != nil {
					return err
				}
				fmt.Printf("Added note 📝 %s (%s)\n", note.Title, note.ID)
				return nil
			})
		},
	}
	addCmd.Flags().String("title", "", "Note title (required)")
	addCmd.Flags().String("content", "", "Note content (required)")
	addCmd.Flags().String("date", today(), "Note date, YYYY-MM-DD")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active notes",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				notes := s.Notes()
				if len(notes) == 0 {
					fmt.Println("No notes")
					return nil
				}
				for _, n := range notes {
					fmt.Printf("📝 %s  %-30s  %s\n", n.Date, n.Title, n.ID)
				}
				return nil
			})
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var req ports.UpdateNoteRequest
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				req.Title = &v
			}
			if cmd.Flags().Changed("content") {
				v, _ := cmd.Flags().GetString("content")
				req.Content = &v
			}
			if cmd.Flags().Changed("date") {
				v, _ := cmd.Flags().GetString("date")
				req.Date = &v
			}

			if err := validate.Struct(req); err != nil {
				fmt.Printf("Invalid note: %v\n", validationError(err))
				return
			}

			withStore(func(s *store.Store) error {
				if err := s.EditNote(args[0], req); err != nil {
					return err
				}
				fmt.Printf("Edited note %s\n", args[0])
				return nil
			})
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("content", "", "New content")
	editCmd.Flags().String("date", "", "New date, YYYY-MM-DD")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				if err := s.DeleteNote(args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted note %s\n", args[0])
				return nil
			})
		},
	}

	finishCmd := &cobra.Command{
		Use:   "finish <id>",
		Short: "Move a note to the finished archive",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				if err := s.FinishNote(args[0]); err != nil {
					return err
				}
				fmt.Printf("Finished note %s\n", args[0])
				return nil
			})
		},
	}

	noteCmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd, finishCmd)
	return noteCmd
}
