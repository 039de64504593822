package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook/core/internal/application/store"
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// NewProjectCommand creates the project management command
func NewProjectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Project management commands",
		Long:  "Create, list, edit, delete and finish projects",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new project",
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			status, _ := cmd.Flags().GetString("status")

			req := ports.CreateProjectRequest{
				Title:       title,
				Description: description,
				StartDate:   start,
				EndDate:     end,
				Status:      entities.ProjectStatus(status),
			}
			if err := validate.Struct(req); err != nil {
				fmt.Printf("Invalid project: %v\n", validationError(err))
				return
			}
			if !req.Status.IsValid() {
				fmt.Printf("Invalid status %q (Planned, In Progress, Completed)\n", status)
				return
			}

			withStore(func(s *store.Store) error {
				project, err := s.AddProject(req)
				if err != nil {
					return err
				}
				fmt.Printf("Added project 📁 %s (%s)\n", project.Title, project.ID)
				return nil
			})
		},
	}
	addCmd.Flags().String("title", "", "Project title (required)")
	addCmd.Flags().String("description", "", "Project description")
	addCmd.Flags().String("start", today(), "Start date, YYYY-MM-DD")
	addCmd.Flags().String("end", today(), "End date, YYYY-MM-DD")
	addCmd.Flags().String("status", string(entities.ProjectStatusPlanned), "Status (Planned, In Progress, Completed)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active projects",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				projects := s.Projects()
				if len(projects) == 0 {
					fmt.Println("No projects")
					return nil
				}
				for _, p := range projects {
					fmt.Printf("📁 %s → %s  %-30s  %s  %s\n", p.StartDate, p.EndDate, p.Title, p.Status, p.ID)
				}
				return nil
			})
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a project",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var req ports.UpdateProjectRequest
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				req.Title = &v
			}
			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				req.Description = &v
			}
			if cmd.Flags().Changed("start") {
				v, _ := cmd.Flags().GetString("start")
				req.StartDate = &v
			}
			if cmd.Flags().Changed("end") {
				v, _ := cmd.Flags().GetString("end")
				req.EndDate = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				st := entities.ProjectStatus(v)
				if !st.IsValid() {
					fmt.Printf("Invalid status %q (Planned, In Progress, Completed)\n", v)
					return
				}
				req.Status = &st
			}

			if err := validate.Struct(req); err != nil {
				fmt.Printf("Invalid project: %v\n", validationError(err))
				return
			}

			withStore(func(s *store.Store) error {
				if err := s.EditProject(args[0], req); err != nil {
					return err
				}
				fmt.Printf("Edited project %s\n", args[0])
				return nil
			})
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().String("start", "", "New start date, YYYY-MM-DD")
	editCmd.Flags().String("end", "", "New end date, YYYY-MM-DD")
	editCmd.Flags().String("status", "", "New status")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				if err := s.DeleteProject(args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted project %s\n", args[0])
				return nil
			})
		},
	}

	finishCmd := &cobra.Command{
		Use:   "finish <id>",
		Short: "Move a project to the finished archive",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				if err := s.FinishProject(args[0]); err != nil {
					return err
				}
				fmt.Printf("Finished project %s\n", args[0])
				return nil
			})
		},
	}

	projectCmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd, finishCmd)
	return projectCmd
}
