package main

import (
	"fmt"
	"strings"

	"github.com/krishna123-lang/semantic-book-recommender/internal/curiosity"
	"github.com/krishna123-lang/semantic-book-recommender/internal/tracker"
	"github.com/spf13/cobra"
)

var journeySteps int

func init() {
	rootCmd.AddCommand(curiosityCmd)
	curiosityCmd.AddCommand(curiosityProfileCmd)
	curiosityCmd.AddCommand(curiosityExpandCmd)
	curiosityCmd.AddCommand(curiosityJourneyCmd)
	curiosityCmd.AddCommand(curiosityScoreCmd)

	curiosityJourneyCmd.Flags().IntVar(&journeySteps, "steps", 3, "Journey length (3-5 books)")
}

var curiosityCmd = &cobra.Command{
	Use:   "curiosity",
	Short: "Explore beyond your reading comfort zone",
	Long: `Commands that analyze your interaction history against semantic
topic clusters of the corpus: where you read, where to expand next, and
a structured reading journey to get there.`,
}

// newCuriosityEngine assembles the clustering engine plus interaction
// history for the current repository.
func newCuriosityEngine() (*curiosity.Engine, []tracker.Event, string) {
	root := mustFindRepository()
	cfg := loadRepoConfig(root)
	books := mustLoadCatalog(root, cfg)
	idx := mustLoadIndex(root, books)

	engine, err := curiosity.New(idx, books, curiosity.DefaultClusters)
	if err != nil {
		exitWithError(ExitError, "clustering corpus: %v", err)
	}

	events, err := newTracker(root).ReadAll()
	if err != nil {
		exitWithError(ExitError, "reading interaction log: %v", err)
	}
	return engine, events, root
}

var curiosityProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your reading profile in topic space",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, events, _ := newCuriosityEngine()
		profile := engine.AnalyzeProfile(events)

		if humanOutput {
			if profile.IsNewUser {
				fmt.Println("No reading history yet. Explore some books first:")
				fmt.Println("  bookrec recommend <query>   bookrec surprise")
				return nil
			}
			fmt.Printf("Dominant interest: %s\n", profile.DominantInterest)
			fmt.Printf("Books explored: %d\n", profile.TotalBooksExplored)
			fmt.Printf("Exploration breadth: %.0f%% of topic areas\n", profile.ExplorationBreadth*100)
			fmt.Println("\nDistribution:")
			for _, c := range profile.ClusterDistribution {
				fmt.Printf("  %-28s %d\n", c.Area, c.Count)
			}
			if len(profile.ComfortZoneBooks) > 0 {
				fmt.Printf("\nComfort zone: %s\n", strings.Join(profile.ComfortZoneBooks, "; "))
			}
		} else {
			outputJSON(profile)
		}
		return nil
	},
}

var curiosityExpandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Suggest adjacent topic areas to explore next",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, events, _ := newCuriosityEngine()
		profile := engine.AnalyzeProfile(events)
		expansions := engine.PredictExpansions(profile, events)

		if humanOutput {
			for i, exp := range expansions {
				fmt.Printf("%d. %s (score %.2f)\n", i+1, exp.Area, exp.ExplorationScore)
				fmt.Printf("   %s\n", exp.Pathway)
				if len(exp.SampleBooks) > 0 {
					fmt.Printf("   Try: %s\n", strings.Join(exp.SampleBooks, "; "))
				}
				fmt.Println()
			}
		} else {
			outputJSON(expansions)
		}
		return nil
	},
}

var curiosityJourneyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Generate a multi-step reading journey",
	Long: `Generate a reading journey from your comfort zone to a new topic
area: a familiar anchor, a bridge book, then books from the target
area.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, events, root := newCuriosityEngine()
		profile := engine.AnalyzeProfile(events)

		journey, err := engine.GenerateJourney(profile, events, journeySteps)
		if err != nil {
			exitWithError(ExitError, "generating journey: %v", err)
		}

		_ = newTracker(root).RecordJourneyStart(journey.ToArea)

		if humanOutput {
			fmt.Printf("%s\n", journey.Title)
			fmt.Printf("%s\n\n", journey.Pathway)
			for _, step := range journey.Steps {
				fmt.Printf("%d. [%s] %s\n", step.Step, step.NoveltyLevel, step.Title)
				fmt.Printf("   %s | %s\n", step.Authors, step.Categories)
				fmt.Printf("   %s\n\n", step.Rationale)
			}
			fmt.Printf("Overall novelty: %.0f%%\n", journey.OverallNovelty*100)
		} else {
			outputJSON(journey)
		}
		return nil
	},
}

var curiosityScoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show your curiosity impact scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, events, _ := newCuriosityEngine()
		impact := engine.ImpactScores(engine.AnalyzeProfile(events))

		if humanOutput {
			fmt.Printf("Exploration level:      %3d / 100\n", impact.ExplorationLevel)
			fmt.Printf("Intellectual diversity: %3d / 100\n", impact.IntellectualDiversity)
			fmt.Printf("Growth index:           %3d / 100\n", impact.GrowthIndex)
		} else {
			outputJSON(impact)
		}
		return nil
	},
}
