package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
	"github.com/skilltrail/skilltrail/internal/infrastructure/config"
	"github.com/skilltrail/skilltrail/internal/infrastructure/storage"
)

var initStarter bool

var initCmd = &cobra.Command{
	Use:   "init [title]",
	Short: "Initialize a skilltrail workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)

		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}
		if err := config.Save(cwd, cfg); err != nil {
			return err
		}

		title := "My Learning Trail"
		if len(args) > 0 {
			title = args[0]
		}

		if initStarter {
			if err := repo.SaveRoadmap(starterRoadmap(title)); err != nil {
				return fmt.Errorf("failed to write starter roadmap: %w", err)
			}
			fmt.Printf("Initialized skilltrail workspace with starter roadmap: %s\n", title)
			return nil
		}

		fmt.Printf("Initialized skilltrail workspace: %s\n", title)
		fmt.Println("Next: 'skilltrail import <roadmap.json>' or 'skilltrail generate <topic>'")
		return nil
	},
}

// starterRoadmap is a minimal tour of the step types.
func starterRoadmap(title string) *roadmap.Roadmap {
	return &roadmap.Roadmap{
		ID:          "starter",
		Title:       title,
		Description: "A short tour of skilltrail itself.",
		Steps: []roadmap.Step{
			{
				ID:     "basics",
				Title:  "Skilltrail basics",
				Type:   roadmap.TypeModule,
				Status: roadmap.StatusUnlocked,
				Children: []roadmap.Step{
					{
						ID:                "first-lesson",
						Title:             "Start and complete a step",
						Type:              roadmap.TypeLesson,
						Status:            roadmap.StatusUnlocked,
						EstimatedDuration: "5 min",
						Points:            5,
					},
					{
						ID:     "first-quiz",
						Title:  "A tiny quiz",
						Type:   roadmap.TypeQuiz,
						Status: roadmap.StatusUnlocked,
						Points: 5,
						Quiz: &roadmap.Quiz{
							Questions: []roadmap.Question{
								{
									ID:   "q1",
									Text: "Which command shows the roadmap tree?",
									Options: map[string]string{
										"a": "skilltrail show",
										"b": "skilltrail push",
									},
									CorrectOptionKeys: []string{"a"},
								},
							},
						},
					},
				},
			},
			{
				ID:     "going-further",
				Title:  "Going further",
				Type:   roadmap.TypeSection,
				Status: roadmap.StatusLocked,
				Children: []roadmap.Step{
					{
						ID:     "docs",
						Title:  "Read the README",
						Type:   roadmap.TypeExternalResource,
						Status: roadmap.StatusLocked,
						URL:    "https://github.com/skilltrail/skilltrail",
					},
				},
			},
		},
	}
}

func init() {
	initCmd.Flags().BoolVar(&initStarter, "starter", false, "Seed a small starter roadmap")
	RootCmd.AddCommand(initCmd)
}
