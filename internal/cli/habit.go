// Habit commands: add, list, done, remove.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitkeep/habitkeep/pkg/types"
)

func newHabitCmd() *cobra.Command {
	habit := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	habit.AddCommand(newHabitAddCmd())
	habit.AddCommand(newHabitListCmd())
	habit.AddCommand(newHabitDoneCmd())
	habit.AddCommand(newHabitRemoveCmd())
	return habit
}

func newHabitAddCmd() *cobra.Command {
	var userID int64
	var title, description, startDate, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new habit",
		Long: `Add creates a habit with status "active".

A title may not be reused while another habit with that title is still
active; marking the old habit done frees the title.

Example:
  habitkeep habit add --user 1 --title "Morning Run" --category Fitness`,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := habitStore()
			if err != nil {
				return err
			}

			if title == "" {
				return fmt.Errorf("title must not be empty")
			}
			if startDate == "" {
				startDate = types.NormalizeDate(time.Now())
			}

			// Duplicate-title-while-active is a caller-level rule; the
			// store inserts unconditionally.
			exists, err := habits.Exists(userID, title)
			if err != nil {
				return fmt.Errorf("check habit: %w", err)
			}
			if exists {
				return fmt.Errorf("an active habit titled %q already exists", title)
			}

			id, err := habits.Create(userID, title, description, startDate, category)
			if err != nil {
				return fmt.Errorf("create habit: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created habit %q (id %d)\n", title, id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&title, "title", "", "habit title (required)")
	cmd.Flags().StringVar(&description, "description", "", "habit description")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newHabitListCmd() *cobra.Command {
	var userID int64
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active habits",
		Long: `List prints the user's habits that are not yet done, optionally
restricted to one category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := habitStore()
			if err != nil {
				return err
			}

			list, err := habits.ListActive(userID, types.HabitFilter{Category: category})
			if err != nil {
				return fmt.Errorf("list habits: %w", err)
			}

			if flags.jsonMode {
				data, err := json.MarshalIndent(list, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal habits: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No active habits")
				return nil
			}
			for _, h := range list {
				line := fmt.Sprintf("%d  %s", h.HabitID, h.Title)
				if h.Category != "" {
					line += fmt.Sprintf("  [%s]", h.Category)
				}
				if h.Description != "" {
					line += "  - " + h.Description
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&category, "category", "", "only habits in this category")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newHabitDoneCmd() *cobra.Command {
	var userID int64
	var title string

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark a habit as done",
		Long: `Done transitions the habit to "done". The transition is one-way;
the habit's logs are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := habitStore()
			if err != nil {
				return err
			}

			id, err := resolveHabitID(userID, title)
			if err != nil {
				return err
			}

			if err := habits.MarkComplete(id); err != nil {
				return fmt.Errorf("mark habit complete: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Habit %q marked done\n", title)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&title, "title", "", "habit title (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newHabitRemoveCmd() *cobra.Command {
	var userID int64
	var title string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a habit and its logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := habitStore()
			if err != nil {
				return err
			}

			id, err := resolveHabitID(userID, title)
			if err != nil {
				return err
			}

			if err := habits.Remove(id); err != nil {
				return fmt.Errorf("remove habit: %w", err)
			}

			// Reported only after the store confirmed the delete.
			fmt.Fprintf(cmd.OutOrStdout(), "Habit %q removed\n", title)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&title, "title", "", "habit title (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// resolveHabitID looks up the user's habit by title.
func resolveHabitID(userID int64, title string) (int64, error) {
	logs, err := logStore()
	if err != nil {
		return 0, err
	}
	id, err := logs.FindHabitIDByTitle(userID, title)
	if errors.Is(err, types.ErrNotFound) {
		return 0, fmt.Errorf("no habit titled %q", title)
	}
	if err != nil {
		return 0, fmt.Errorf("find habit: %w", err)
	}
	return id, nil
}
