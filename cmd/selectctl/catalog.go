package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogClientSide bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the course catalog in display order",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogClientSide, "merge-locally", false,
		"Fetch courses and offerings separately and merge on the client")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	courses, err := c.GetCatalog(cmd.Context(), 0, 0)
	if catalogClientSide {
		courses, err = c.LoadCatalog(cmd.Context())
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OFFERING\tCODE\tTITLE\tYEAR\tTERM\tSTATUS\tSEATS")
	for _, course := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%d/%d\n",
			course.OfferingID, course.Code, course.Title,
			course.Year, course.Term, course.Status,
			course.AvailableSeats, course.Capacity)
	}
	return w.Flush()
}
