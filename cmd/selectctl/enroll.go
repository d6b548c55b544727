package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushkov-fedor/course-selection/internal/app/models"
	"github.com/pushkov-fedor/course-selection/internal/app/models/dto"
	"github.com/pushkov-fedor/course-selection/internal/wizard"
)

var (
	enrollStudentID  string
	enrollSemesterID string
	enrollMain       []string
	enrollReserve    []string
	enrollMotivation string
	enrollPriority   int
	enrollAccept     bool
)

var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Submit an enrollment request through the wizard",
	Long: `Runs the enrollment wizard end to end: review, motivation,
documents, confirmation, submit. The motivation text must be at least 50
characters and the terms must be accepted with --accept-terms.`,
	RunE: runEnroll,
}

func init() {
	rootCmd.AddCommand(enrollCmd)
	enrollCmd.Flags().StringVar(&enrollStudentID, "student", "", "Student ID")
	enrollCmd.Flags().StringVar(&enrollSemesterID, "semester", "", "Cohort semester ID")
	enrollCmd.Flags().StringSliceVar(&enrollMain, "course", nil, "Offering ID to enroll into (repeatable)")
	enrollCmd.Flags().StringSliceVar(&enrollReserve, "reserve", nil, "Offering ID for the reserve list (repeatable)")
	enrollCmd.Flags().StringVar(&enrollMotivation, "motivation", "", "Motivation text (min 50 characters)")
	enrollCmd.Flags().IntVar(&enrollPriority, "priority", 1, "Request priority from 1 to 5")
	enrollCmd.Flags().BoolVar(&enrollAccept, "accept-terms", false, "Accept the enrollment terms")
	enrollCmd.MarkFlagRequired("student")
	enrollCmd.MarkFlagRequired("semester")
	enrollCmd.MarkFlagRequired("course")
}

func runEnroll(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	var courses []dto.EnrollmentCourseChoice
	for _, id := range enrollMain {
		courses = append(courses, dto.EnrollmentCourseChoice{CourseOfferingID: id, Type: models.ItemTypeMain})
	}
	for _, id := range enrollReserve {
		courses = append(courses, dto.EnrollmentCourseChoice{CourseOfferingID: id, Type: models.ItemTypeReserve})
	}

	w := wizard.New(enrollStudentID, enrollSemesterID, courses)
	w.Motivation = enrollMotivation
	w.Priority = enrollPriority
	w.TermsAccepted = enrollAccept

	for w.Step() != wizard.StepConfirmation {
		if err := w.Next(); err != nil {
			return fmt.Errorf("step %d: %w", w.Step(), err)
		}
	}

	if err := w.Submit(cmd.Context(), c); err != nil {
		return err
	}

	fmt.Printf("Enrollment request submitted: %s\n", w.RequestID)

	request, err := c.GetEnrollmentRequest(cmd.Context(), enrollStudentID, enrollSemesterID)
	if err != nil || request == nil {
		return err
	}
	fmt.Printf("Status: %s\n", request.Status)
	for _, item := range request.Courses {
		line := fmt.Sprintf("  %s: %s", item.CourseOfferingID, item.Status)
		if item.CommentOnStatus != "" {
			line += " (" + item.CommentOnStatus + ")"
		}
		fmt.Println(line)
	}
	return nil
}
