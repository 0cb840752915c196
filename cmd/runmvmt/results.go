package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/db"
)

var errNoDatabase = errors.New("DATABASE_URL is not set")

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the submissions table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DatabaseURL == "" {
				return errNoDatabase
			}
			database, err := openDatabase(cmd, a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			database.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
			return nil
		},
	}
}

func newResultsCmd(a *app) *cobra.Command {
	var (
		userID     string
		quiz       string
		outputPath string
		deleteAll  bool
	)

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show or delete stored results for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(userID)
			if err != nil || id == uuid.Nil {
				return fmt.Errorf("invalid user id %q", userID)
			}
			if quiz != "" && !db.ValidQuiz(quiz) {
				return fmt.Errorf("quiz must be one of %v", db.Quizzes)
			}
			if a.cfg.DatabaseURL == "" {
				return errNoDatabase
			}

			database, err := openDatabase(cmd, a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer database.Close()

			switch {
			case deleteAll:
				n, err := database.DeleteSubmissions(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d submissions for %s\n", n, id)
				return nil
			case quiz != "":
				sub, err := database.GetSubmission(cmd.Context(), id, quiz)
				if err != nil {
					return err
				}
				if sub == nil {
					return fmt.Errorf("no %s result for user %s", quiz, id)
				}
				return writeJSON(cmd, outputPath, sub)
			default:
				subs, err := database.ListSubmissions(cmd.Context(), id)
				if err != nil {
					return err
				}
				if subs == nil {
					subs = []db.Submission{}
				}
				return writeJSON(cmd, outputPath, subs)
			}
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID (required)")
	cmd.Flags().StringVarP(&quiz, "quiz", "q", "", "Only show this quiz: dating, running, nutrition or screening")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the results JSON (default stdout)")
	cmd.Flags().BoolVar(&deleteAll, "delete", false, "Delete every stored result for the user")

	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	return cmd
}
