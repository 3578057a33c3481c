package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gotaskboard/internal/board/domain/entities"
)

// Метки отображения задач.
const (
	markDone = "[x]"
	markOpen = "[ ]"
)

// renderUsers печатает таблицу пользователей.
func renderUsers(w io.Writer, users []entities.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCITY\tCOMPANY")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			user.ID, user.Name, user.Email, user.Address.City, user.Company.Name)
	}
	_ = tw.Flush()
}

// renderUser печатает карточку пользователя.
func renderUser(w io.Writer, user entities.User) {
	fmt.Fprintf(w, "#%d %s <%s>\n", user.ID, user.Name, user.Email)
	if user.Phone != "" {
		fmt.Fprintf(w, "  phone:   %s\n", user.Phone)
	}
	if user.Website != "" {
		fmt.Fprintf(w, "  website: %s\n", user.Website)
	}
	fmt.Fprintf(w, "  address: %s, %s, %s %s\n",
		user.Address.Street, user.Address.Suite, user.Address.City, user.Address.Zipcode)
	fmt.Fprintf(w, "  company: %s (%s)\n", user.Company.Name, user.Company.CatchPhrase)
}

// renderTasks печатает список задач.
func renderTasks(w io.Writer, tasks []entities.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "  no tasks")
		return
	}
	for _, task := range tasks {
		mark := markOpen
		if task.Completed {
			mark = markDone
		}
		fmt.Fprintf(w, "  %s %4d  %s\n", mark, task.ID, task.Title)
	}
}

// renderUserWithTasks печатает пользователя вместе с его задачами.
func renderUserWithTasks(w io.Writer, composed entities.UserWithTasks) {
	renderUser(w, composed.User)
	fmt.Fprintf(w, "  tasks (%d):\n", len(composed.Tasks))
	renderTasks(w, composed.Tasks)
}

// renderUsersWithTasks печатает всех пользователей с задачами.
func renderUsersWithTasks(w io.Writer, composed []entities.UserWithTasks) {
	for i, entry := range composed {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderUserWithTasks(w, entry)
	}
}
