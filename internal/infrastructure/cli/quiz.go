package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var quizAnswers []string

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take quizzes on the roadmap",
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit <step-id>",
	Short: "Submit answers for a quiz step",
	Long: `Submit answers for a quiz step.

Each --answer pairs a question id with the selected option keys:

  skilltrail quiz submit go-basics-quiz --answer q1=a --answer q2=b,d`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := parseAnswers(quizAnswers)
		if err != nil {
			return err
		}
		if len(answers) == 0 {
			return NewCLIError("no answers given", "Pass at least one --answer q1=a", nil)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		attempt, err := services.Progress.SubmitQuiz(args[0], answers)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Score: %.0f%%\n", attempt.Score*100)
		if attempt.Passed {
			fmt.Println("Passed! The step is completed.")
		} else {
			fmt.Println("Not passed. Retry with 'skilltrail step retry' after reviewing the material.")
		}
		return nil
	},
}

// parseAnswers converts q1=a,b pairs into the answer map.
func parseAnswers(pairs []string) (map[string][]string, error) {
	answers := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		questionID, keys, ok := strings.Cut(pair, "=")
		if !ok || questionID == "" || keys == "" {
			return nil, fmt.Errorf("invalid answer %q (expected question=key[,key])", pair)
		}
		var selected []string
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				selected = append(selected, k)
			}
		}
		answers[strings.TrimSpace(questionID)] = selected
	}
	return answers, nil
}

func init() {
	quizSubmitCmd.Flags().StringArrayVar(&quizAnswers, "answer", nil,
		"Answer as question=key[,key] (repeatable)")
	quizCmd.AddCommand(quizSubmitCmd)
	RootCmd.AddCommand(quizCmd)
}
