package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/cli"
	"task-tracker.com/task-tracker/internal/constants"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	Example: `  task-tracker add --title="Write report" --priority=high
  task-tracker add --title="Fix bug" --description="login page" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		rawPriority, _ := cmd.Flags().GetString("priority")
		rawStatus, _ := cmd.Flags().GetString("status")

		priority, ok := constants.ParsePriority(rawPriority)
		if !ok {
			return fmt.Errorf("invalid priority %q", rawPriority)
		}
		status, ok := constants.ParseStatus(rawStatus)
		if !ok {
			return fmt.Errorf("invalid status %q", rawStatus)
		}

		return withApp(cmd, func(ctx context.Context, service *services.TaskService) error {
			task, err := service.CreateTask(ctx, services.CreateTaskInput{
				Title:       title,
				Description: description,
				Priority:    priority,
				Status:      status,
			})
			if err != nil {
				return err
			}
			return printTask(cmd, *task)
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by status or priority",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter services.ListFilter
		if raw, _ := cmd.Flags().GetString("status"); raw != "" {
			s, ok := constants.ParseStatus(raw)
			if !ok {
				return fmt.Errorf("invalid status %q", raw)
			}
			filter.Status = s
		}
		if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
			p, ok := constants.ParsePriority(raw)
			if !ok {
				return fmt.Errorf("invalid priority %q", raw)
			}
			filter.Priority = p
		}

		return withApp(cmd, func(ctx context.Context, service *services.TaskService) error {
			tasks, err := service.ListTasks(filter)
			if err != nil {
				return err
			}
			return printTasks(cmd, tasks)
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		return withApp(cmd, func(ctx context.Context, service *services.TaskService) error {
			task, err := service.GetTask(id)
			if err != nil {
				return err
			}
			return printTask(cmd, *task)
		})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the supplied fields of a task",
	Example: `  task-tracker update 1718000000000 --status=completed
  task-tracker update 1718000000000 --title="New title" --priority=low`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var patch model.TaskPatch
		flags := cmd.Flags()
		if flags.Changed("title") {
			v, _ := flags.GetString("title")
			patch.Title = &v
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			patch.Description = &v
		}
		if flags.Changed("priority") {
			raw, _ := flags.GetString("priority")
			p, ok := constants.ParsePriority(raw)
			if !ok {
				return fmt.Errorf("invalid priority %q", raw)
			}
			patch.Priority = &p
		}
		if flags.Changed("status") {
			raw, _ := flags.GetString("status")
			s, ok := constants.ParseStatus(raw)
			if !ok {
				return fmt.Errorf("invalid status %q", raw)
			}
			patch.Status = &s
		}

		return withApp(cmd, func(ctx context.Context, service *services.TaskService) error {
			task, err := service.UpdateTask(ctx, id, patch)
			if err != nil {
				return err
			}
			return printTask(cmd, *task)
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete every task with the given id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		return withApp(cmd, func(ctx context.Context, service *services.TaskService) error {
			removed, err := service.DeleteTask(ctx, id)
			if err != nil {
				return err
			}
			if asJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"id": id, "removed": removed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d task(s) with id %d\n", removed, id)
			return nil
		})
	},
}

func init() {
	addCmd.Flags().String("title", "", "Task title (required)")
	_ = addCmd.MarkFlagRequired("title")
	addCmd.Flags().String("description", "", "Task description")
	addCmd.Flags().String("priority", string(constants.PriorityMedium), "Priority: low, medium, high")
	addCmd.Flags().String("status", string(constants.StatusPending), "Status: pending, in_progress, completed")

	listCmd.Flags().String("status", "", "Only tasks with this status")
	listCmd.Flags().String("priority", "", "Only tasks with this priority")

	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().String("description", "", "New description")
	updateCmd.Flags().String("priority", "", "New priority: low, medium, high")
	updateCmd.Flags().String("status", "", "New status: pending, in_progress, completed")

	for _, c := range []*cobra.Command{addCmd, listCmd, showCmd, updateCmd, deleteCmd} {
		c.Flags().Bool("json", false, "Output in JSON format")
		rootCmd.AddCommand(c)
	}
}

func withApp(cmd *cobra.Command, fn func(context.Context, *services.TaskService) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := bootstrap(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a.service)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", raw)
	}
	return id, nil
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printTask(cmd *cobra.Command, task model.Task) error {
	if asJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), task)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTask(task))
	return nil
}

func printTasks(cmd *cobra.Command, tasks []model.Task) error {
	if asJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), tasks)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTask(t))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
