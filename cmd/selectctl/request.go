package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	requestStudentID  string
	requestSemesterID string
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Show the student's latest enrollment request for a semester",
	RunE:  runRequest,
}

func init() {
	rootCmd.AddCommand(requestCmd)
	requestCmd.Flags().StringVar(&requestStudentID, "student", "", "Student ID")
	requestCmd.Flags().StringVar(&requestSemesterID, "semester", "", "Cohort semester ID")
	requestCmd.MarkFlagRequired("student")
	requestCmd.MarkFlagRequired("semester")
}

func runRequest(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	request, err := c.GetEnrollmentRequest(cmd.Context(), requestStudentID, requestSemesterID)
	if err != nil {
		return err
	}
	if request == nil {
		fmt.Println("No enrollment request submitted yet.")
		return nil
	}

	fmt.Printf("Request %s  type=%s  status=%s\n", request.ID, request.Type, request.Status)
	if request.Error != "" {
		fmt.Printf("Error: %s\n", request.Error)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OFFERING\tTYPE\tSTATUS\tCOMMENT")
	for _, item := range request.Courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			item.CourseOfferingID, item.Type, item.Status, item.CommentOnStatus)
	}
	return w.Flush()
}
