package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook/core/internal/application/store"
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// NewTaskCommand creates the task management command
func NewTaskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Task management commands",
		Long:  "Create, list, edit, delete and finish tasks",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			date, _ := cmd.Flags().GetString("date")
			description, _ := cmd.Flags().GetString("description")
			category, _ := cmd.Flags().GetString("category")

			req := ports.CreateTaskRequest{
				Title:       title,
				Date:        date,
				Description: description,
				Category:    entities.Category(category),
			}
			if err := validate.Struct(req); err != nil {
				fmt.Printf("Invalid task: %v\n", validationError(err))
				return
			}

			withStore(func(s *store.Store) error {
				task, err := s.AddTask(req)
				if err != nil {
					return err
				}
				fmt.Printf("Added task %s %s (%s)\n", task.Category.Emoji(), task.Title, task.ID)
				return nil
			})
		},
	}
	addCmd.Flags().String("title", "", "Task title (required)")
	addCmd.Flags().String("date", today(), "Task date, YYYY-MM-DD")
	addCmd.Flags().String("description", "", "Task description")
	addCmd.Flags().String("category", string(entities.CategoryDevelopment), "Task category")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active tasks",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				tasks := s.Tasks()
				if len(tasks) == 0 {
					fmt.Println("No tasks")
					return nil
				}
				for _, t := range tasks {
					fmt.Printf("%s  %s  %-30s  %s  %s\n", t.Category.Emoji(), t.Date, t.Title, t.Category, t.ID)
				}
				return nil
			})
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var req ports.UpdateTaskRequest
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				req.Title = &v
			}
			if cmd.Flags().Changed("date") {
				v, _ := cmd.Flags().GetString("date")
				req.Date = &v
			}
			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				req.Description = &v
			}
			if cmd.Flags().Changed("category") {
				v, _ := cmd.Flags().GetString("category")
				c := entities.Category(v)
				req.Category = &c
			}

			if err := validate.Struct(req); err != nil {
				fmt.Printf("Invalid task: %v\n", validationError(err))
				return
			}

			withStore(func(s *store.Store) error {
				if err := s.EditTask(args[0], req); err != nil {
					return err
				}
				fmt.Printf("Edited task %s\n", args[0])
				return nil
			})
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("date", "", "New date, YYYY-MM-DD")
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().String("category", "", "New category")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				if err := s.DeleteTask(args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted task %s\n", args[0])
				return nil
			})
		},
	}

	finishCmd := &cobra.Command{
		Use:   "finish <id>",
		Short: "Move a task to the finished archive",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				if err := s.FinishTask(args[0]); err != nil {
					return err
				}
				fmt.Printf("Finished task %s\n", args[0])
				return nil
			})
		},
		Args: cobra.ExactArgs(1),
	}

	taskCmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd, finishCmd)
	return taskCmd
}
