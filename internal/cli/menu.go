// Package cli implements the line-oriented interactive task menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

// errQuit ends the loop on EOF.
var errQuit = errors.New("quit")

type Menu struct {
	service *services.TaskService
	in      *bufio.Reader
	out     io.Writer
}

func NewMenu(service *services.TaskService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run shows the menu until the user picks Exit or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printf("\nTask Manager\n")
		m.printf("1. Add task\n")
		m.printf("2. View pending tasks\n")
		m.printf("3. Update task status\n")
		m.printf("4. Delete task\n")
		m.printf("5. Exit\n")

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return m.finish(err)
		}

		switch choice {
		case "1":
			err = m.addTask(ctx)
		case "2":
			err = m.viewPending()
		case "3":
			err = m.updateStatus(ctx)
		case "4":
			err = m.deleteTask(ctx)
		case "5":
			m.printf("Goodbye!\n")
			return nil
		default:
			m.printf("Invalid option %q, try again.\n", choice)
			continue
		}

		if err != nil {
			if errors.Is(err, errQuit) {
				return m.finish(err)
			}
			m.printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) addTask(ctx context.Context) error {
	title, err := m.prompt("Title: ")
	if err != nil {
		return err
	}
	if title == "" {
		return errors.New("title is required")
	}

	description, err := m.prompt("Description (optional): ")
	if err != nil {
		return err
	}

	raw, err := m.prompt("Priority (low/medium/high) [medium]: ")
	if err != nil {
		return err
	}
	priority := constants.PriorityMedium
	if raw != "" {
		p, ok := constants.ParsePriority(raw)
		if !ok {
			return fmt.Errorf("invalid priority %q", raw)
		}
		priority = p
	}

	task, err := m.service.CreateTask(ctx, services.CreateTaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
	})
	if err != nil {
		return err
	}

	m.printf("Added task %d.\n", task.ID)
	return nil
}

func (m *Menu) viewPending() error {
	tasks, err := m.service.ListTasks(services.ListFilter{Status: constants.StatusPending})
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		m.printf("No pending tasks.\n")
		return nil
	}

	m.printf("Pending tasks:\n")
	for _, t := range tasks {
		m.printf("%s\n", FormatTask(t))
	}
	return nil
}

func (m *Menu) updateStatus(ctx context.Context) error {
	id, err := m.promptID()
	if err != nil {
		return err
	}

	raw, err := m.prompt("New status (pending/in_progress/completed): ")
	if err != nil {
		return err
	}
	status, ok := constants.ParseStatus(raw)
	if !ok {
		return fmt.Errorf("invalid status %q", raw)
	}

	task, err := m.service.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}

	m.printf("Task %d is now %s.\n", task.ID, task.Status)
	return nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	id, err := m.promptID()
	if err != nil {
		return err
	}

	if _, err := m.service.DeleteTask(ctx, id); err != nil {
		return err
	}

	m.printf("Deleted task %d.\n", id)
	return nil
}

func (m *Menu) promptID() (int64, error) {
	raw, err := m.prompt("Task ID: ")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", raw)
	}
	return id, nil
}

// prompt reads one trimmed line. A final line without a newline is still
// returned; EOF with nothing read yields errQuit.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errQuit) {
		m.printf("\n")
		return nil
	}
	return err
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// FormatTask renders one task on a single line.
func FormatTask(t model.Task) string {
	line := fmt.Sprintf("[%d] %s (priority: %s, status: %s)", t.ID, t.Title, t.Priority, t.Status)
	if t.Description != "" {
		line += " - " + t.Description
	}
	return line
}
