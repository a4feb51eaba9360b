package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/id"
	"github.com/cleared-dev/passbook/internal/students"
)

func newStudentsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "Run the student score menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := opts.setup(cmd); err != nil {
				return err
			}
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			runStudents(p, students.NewRoster())
			return nil
		},
	}
}

func runStudents(p *prompter, roster *students.Roster) {
	for {
		p.println("What do you want to do?")
		p.println("1. Add student")
		p.println("2. View student")
		p.println("3. Remove student")
		p.println("4. Update student")
		p.println("0. Exit")

		choice, ok := p.ask("")
		if !ok || choice == "0" {
			break
		}

		switch choice {
		case "1":
			addStudent(p, roster)
		case "2":
			listStudents(p, roster.List())
		case "3":
			removeStudent(p, roster)
		case "4":
			updateStudent(p, roster)
		default:
			p.println("Invalid option.")
		}
	}
	p.println("Program ended.")
}

func listStudents(p *prompter, all []students.Student) {
	if len(all) == 0 {
		p.println("No student found")
		return
	}
	p.println("==Student List==")
	for _, s := range all {
		p.printf("ID: %s, Name: %s, Score: %d\n", s.ID, s.Name, s.Score)
	}
}

// askNameScore reads a name and a score; an unreadable score counts as 0.
func askNameScore(p *prompter) (name string, score int, ok bool) {
	if name, ok = p.ask("Enter student name: "); !ok {
		return
	}
	answer, ok := p.ask("Enter student score: ")
	if !ok {
		return
	}
	score, _ = strconv.Atoi(answer)
	return name, score, true
}

func addStudent(p *prompter, roster *students.Roster) {
	p.println("==Add student==")
	answer, ok := p.ask("Enter student ID: ")
	if !ok {
		return
	}
	studentID, err := id.Normalize(answer)
	if err != nil {
		p.println("Student ID cannot be empty")
		return
	}
	name, score, ok := askNameScore(p)
	if !ok {
		return
	}
	if err := roster.Add(students.Student{ID: studentID, Name: name, Score: score}); err != nil {
		p.println(err)
		return
	}
	p.println("Student added successfully")
}

func removeStudent(p *prompter, roster *students.Roster) {
	answer, ok := p.ask("Enter student Id to remove: ")
	if !ok {
		return
	}
	if err := roster.Remove(answer); err != nil {
		p.println("Student not found")
		return
	}
	p.println("Student removed successfully")
	listStudents(p, roster.List())
}

func updateStudent(p *prompter, roster *students.Roster) {
	studentID, ok := p.ask("Enter student Id to update: ")
	if !ok {
		return
	}
	if !roster.Exists(studentID) {
		p.println("Student not found")
		return
	}
	name, score, ok := askNameScore(p)
	if !ok {
		return
	}
	if err := roster.Update(studentID, name, score); err != nil {
		p.println("Student not found")
		return
	}
	p.println("Student updated successfully")
}
