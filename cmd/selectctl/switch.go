package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/wizard"
)

var (
	switchStudentID  string
	switchSemesterID string
	switchFrom       string
	switchTo         string
)

var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Switch the student from one offering to another",
	Long: `Replaces one enrolled offering with another. Without --to the
command lists the valid switch targets: open offerings with seats left
that the student does not already hold.`,
	RunE: runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
	switchCmd.Flags().StringVar(&switchStudentID, "student", "", "Student ID")
	switchCmd.Flags().StringVar(&switchSemesterID, "semester", "", "Cohort semester ID")
	switchCmd.Flags().StringVar(&switchFrom, "from", "", "Offering ID to switch away from")
	switchCmd.Flags().StringVar(&switchTo, "to", "", "Offering ID to switch into")
	switchCmd.MarkFlagRequired("student")
	switchCmd.MarkFlagRequired("semester")
	switchCmd.MarkFlagRequired("from")
}

func runSwitch(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	catalog, err := c.GetCatalog(cmd.Context(), 0, 0)
	if err != nil {
		return err
	}

	// The current request tells us which offerings the student holds.
	var enrolled []string
	request, err := c.GetEnrollmentRequest(cmd.Context(), switchStudentID, switchSemesterID)
	if err != nil {
		return err
	}
	if request != nil {
		for _, item := range request.Courses {
			if item.Status == models.ItemStatusSuccess {
				enrolled = append(enrolled, item.CourseOfferingID)
			}
		}
	}

	candidates := wizard.Candidates(catalog, enrolled)

	if switchTo == "" {
		fmt.Println("Switch targets:")
		for _, course := range candidates {
			fmt.Printf("  %s  %s (%d seats left)\n", course.OfferingID, course.Title, course.AvailableSeats)
		}
		return nil
	}

	flow := wizard.NewSwitchFlow(switchStudentID, switchSemesterID, switchFrom)
	if err := flow.Select(switchTo); err != nil {
		return err
	}
	if err := flow.Submit(cmd.Context(), c); err != nil {
		return err
	}

	fmt.Printf("Switch request submitted: %s\n", flow.RequestID)

	// Re-fetch rather than trusting the local view of seat counts.
	request, err = c.GetEnrollmentRequest(cmd.Context(), switchStudentID, switchSemesterID)
	if err != nil || request == nil {
		return err
	}
	fmt.Printf("Status: %s\n", request.Status)
	return nil
}
