package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	assignmentText string
	assignmentFile string
	gradeStatus    string
	gradeScore     float64
	gradeFeedback  string
)

var assignmentCmd = &cobra.Command{
	Use:   "assignment",
	Short: "Submit and grade assignment steps",
}

var assignmentSubmitCmd = &cobra.Command{
	Use:   "submit <step-id>",
	Short: "Hand in work for an assignment step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := assignmentText
		if assignmentFile != "" {
			data, err := os.ReadFile(assignmentFile)
			if err != nil {
				return fmt.Errorf("failed to read submission file: %w", err)
			}
			content = string(data)
		}
		if content == "" {
			return NewCLIError("nothing to submit", "Pass --text or --file with your work", nil)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		submission, err := services.Progress.SubmitAssignment(args[0], content)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Submitted at %s. Grade it with 'skilltrail assignment grade %s --status passed'\n",
			submission.SubmittedAt.Format("15:04:05"), args[0])
		return nil
	},
}

var assignmentGradeCmd = &cobra.Command{
	Use:   "grade <step-id>",
	Short: "Record a grade for a submitted assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		var grade *float64
		if cmd.Flags().Changed("grade") {
			if gradeScore < 0 || gradeScore > 1 {
				return NewCLIError("grade out of range", "Grades run from 0.0 to 1.0", nil)
			}
			grade = &gradeScore
		}

		submission, err := services.Progress.GradeAssignment(args[0], gradeStatus, grade, gradeFeedback)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Assignment %s: %s\n", args[0], submission.Status)
		if submission.Grade != nil {
			fmt.Printf("Grade: %.0f%%\n", *submission.Grade*100)
		}
		return nil
	},
}

func init() {
	assignmentSubmitCmd.Flags().StringVar(&assignmentText, "text", "", "Submission text")
	assignmentSubmitCmd.Flags().StringVar(&assignmentFile, "file", "", "Read the submission from a file")

	assignmentGradeCmd.Flags().StringVar(&gradeStatus, "status", "passed", "Grading outcome (passed or rejected)")
	assignmentGradeCmd.Flags().Float64Var(&gradeScore, "grade", 0, "Numeric grade from 0.0 to 1.0")
	assignmentGradeCmd.Flags().StringVar(&gradeFeedback, "feedback", "", "Feedback for the learner")

	assignmentCmd.AddCommand(assignmentSubmitCmd)
	assignmentCmd.AddCommand(assignmentGradeCmd)
	RootCmd.AddCommand(assignmentCmd)
}
