package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook/core/internal/application/store"
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// NewProfileCommand creates the profile command
func NewProfileCommand() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile commands",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile and activity stats",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				p := s.Profile()
				st := s.Stats()

				fmt.Printf("%s <%s> (avatar #%d)\n\n", p.Name, p.Email, p.PhotoIndex)
				fmt.Printf("Tasks:    %d active, %d completed\n", st.ActiveTasks, st.FinishedTasks)
				fmt.Printf("Projects: %d active, %d completed\n", st.ActiveProjects, st.FinishedProjects)
				fmt.Printf("Notes:    %d active, %d completed\n", st.ActiveNotes, st.FinishedNotes)

				if len(st.Badges) > 0 {
					fmt.Println("\nBadges:")
					for _, b := range st.Badges {
						fmt.Printf("  %s %s\n", b.Icon, b.Label)
					}
				}

				if last := s.LastFinished(); len(last) > 0 {
					fmt.Println("\nLast completed:")
					for _, kind := range []string{"task", "project", "note"} {
						if item, ok := last[kind]; ok {
							fmt.Printf("  %-8s %s\n", kind, item.Title)
						}
					}
				}
				return nil
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the profile",
		Long:  "Replace the entire profile record. Unset flags fall back to the current value.",
		Run: func(cmd *cobra.Command, args []string) {
			withStore(func(s *store.Store) error {
				current := s.Profile()

				name := current.Name
				email := current.Email
				photo := current.PhotoIndex
				if cmd.Flags().Changed("name") {
					name, _ = cmd.Flags().GetString("name")
				}
				if cmd.Flags().Changed("email") {
					email, _ = cmd.Flags().GetString("email")
				}
				if cmd.Flags().Changed("photo") {
					photo, _ = cmd.Flags().GetInt("photo")
				}

				req := ports.UpdateProfileRequest{Name: name, Email: email, PhotoIndex: photo}
				if err := validate.Struct(req); err != nil {
					fmt.Printf("Invalid profile: %v\n", validationError(err))
					return nil
				}

				if err := s.UpdateProfile(entities.Profile{
					Name:       req.Name,
					Email:      req.Email,
					PhotoIndex: req.PhotoIndex,
				}); err != nil {
					return err
				}

				fmt.Printf("Profile updated: %s <%s> (avatar #%d)\n", req.Name, req.Email, req.PhotoIndex)
				return nil
			})
		},
	}
	setCmd.Flags().String("name", "", "Display name")
	setCmd.Flags().String("email", "", "Email address")
	setCmd.Flags().Int("photo", 0, "Avatar index")

	profileCmd.AddCommand(showCmd, setCmd)
	return profileCmd
}
