package console

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/draft"
	"alcyxob/trainer-console/internal/service"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errQuit = errors.New("quit")

// Shell is the line-oriented trainer console. Each command runs to completion,
// including any confirmation prompt, before the next line is read.
type Shell struct {
	planners  service.PlannerService
	schedules service.ScheduleService
	students  service.StudentService

	in      *bufio.Reader
	out     io.Writer
	print   *Printer
	confirm service.Confirmer
}

func NewShell(planners service.PlannerService, schedules service.ScheduleService, students service.StudentService, in io.Reader, out io.Writer) *Shell {
	reader := bufio.NewReader(in)
	return &Shell{
		planners:  planners,
		schedules: schedules,
		students:  students,
		in:        reader,
		out:       out,
		print:     NewPrinter(out),
		confirm:   promptConfirmer{in: reader, out: out},
	}
}

type command struct {
	usage string
	help  string
	run   func(s *Shell, ctx context.Context, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"planners":   {"planners", "list workout planners", (*Shell).listPlanners},
		"create":     {"create <name> <M|F|all> <hypertrophy|weightLoss|strength>", "create a planner", (*Shell).createPlanner},
		"rename":     {"rename <id> <name>", "rename a planner", (*Shell).renamePlanner},
		"delete":     {"delete <id>", "delete a planner (asks first)", (*Shell).deletePlanner},
		"set-day":    {"set-day <id> <weekday> <name> [exercise:sets:reps:rest ...]", "set the workout of a weekday", (*Shell).setDay},
		"show":       {"show <id>", "print a planner", (*Shell).showPlanner},
		"remove-day": {"remove-day <id> <weekday>", "clear a weekday (asks first)", (*Shell).removeDay},
		"students":   {"students", "list students", (*Shell).listStudents},
		"help":       {"help", "show this help", (*Shell).help},
		"quit":       {"quit", "leave the console", func(*Shell, context.Context, []string) error { return errQuit }},
	}
	commands["exit"] = commands["quit"]
}

// Run reads and executes commands until quit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.print.Info("Trainer console. Type 'help' for commands.")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}

		if err := s.Exec(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			s.print.Error(err.Error())
		}
	}
}

// Exec runs a single command line.
func (s *Shell) Exec(ctx context.Context, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, type 'help'", args[0])
	}
	return cmd.run(s, ctx, args[1:])
}

func (s *Shell) help(_ context.Context, _ []string) error {
	s.print.Section("Commands")
	names := []string{"planners", "create", "rename", "delete", "set-day", "show", "remove-day", "students", "help", "quit"}
	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{commands[n].usage, commands[n].help}
	}
	s.print.Table([]string{"Usage", "Description"}, rows)
	return nil
}

func (s *Shell) listPlanners(ctx context.Context, _ []string) error {
	planners, err := s.planners.List(ctx)
	if err != nil {
		return err
	}
	s.print.Section("Workout planners")
	if len(planners) == 0 {
		s.print.EmptyState("No planners yet. Use 'create' to add one.")
		return nil
	}
	rows := make([][]string, len(planners))
	for i, p := range planners {
		rows[i] = []string{p.ID, p.Name, p.TargetGender.Label(), p.Goal.Label(), Count(len(p.Schedule), "day", "days")}
	}
	s.print.Table([]string{"ID", "Name", "Gender", "Goal", "Schedule"}, rows)
	return nil
}

func (s *Shell) createPlanner(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usageError("create")
	}
	p, err := s.planners.Create(ctx, service.PlannerInput{
		Name:         args[0],
		TargetGender: domain.TargetGender(args[1]),
		Goal:         domain.Goal(args[2]),
	})
	if err != nil {
		return err
	}
	s.print.Success(fmt.Sprintf("Created planner %q (%s)", p.Name, p.ID))
	return nil
}

func (s *Shell) renamePlanner(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("rename")
	}
	current, err := s.planners.Get(ctx, args[0])
	if err != nil {
		return err
	}
	p, err := s.planners.Update(ctx, current.ID, service.PlannerInput{
		Name:         args[1],
		TargetGender: current.TargetGender,
		Goal:         current.Goal,
	})
	if err != nil {
		return err
	}
	s.print.Success(fmt.Sprintf("Renamed planner to %q", p.Name))
	return nil
}

func (s *Shell) deletePlanner(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("delete")
	}
	deleted, err := s.planners.Delete(ctx, args[0], s.confirm)
	if err != nil {
		return err
	}
	if !deleted {
		s.print.Warning("Kept planner")
		return nil
	}
	s.print.Success("Deleted planner " + args[0])
	return nil
}

func (s *Shell) setDay(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usageError("set-day")
	}
	day, err := domain.ParseWeekday(args[1])
	if err != nil {
		return err
	}
	form := draft.DayForm{Name: args[2], Exercises: []domain.Exercise{}}
	for _, spec := range args[3:] {
		if form.Exercises, err = appendExerciseSpec(form.Exercises, spec); err != nil {
			return err
		}
	}

	w, err := s.schedules.SetDay(ctx, args[0], day, form)
	if err != nil {
		return err
	}
	s.print.Success(fmt.Sprintf("%s: %s (%s)", day.Label(), w.Name, Count(len(w.Exercises), "exercise", "exercises")))
	return nil
}

// appendExerciseSpec adds a default row and fills it from "name[:sets[:reps[:rest]]]".
// Omitted numbers keep their defaults.
func appendExerciseSpec(list []domain.Exercise, spec string) ([]domain.Exercise, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 4 {
		return list, fmt.Errorf("exercise %q: expected name:sets:reps:rest", spec)
	}
	list = draft.Append(list)
	index := len(list) - 1
	fields := []draft.ExerciseField{draft.FieldName, draft.FieldSets, draft.FieldReps, draft.FieldRestTime}

	var err error
	for i, part := range parts {
		if i > 0 && part == "" {
			continue
		}
		if list, err = draft.SetField(list, index, fields[i], part); err != nil {
			return list, fmt.Errorf("exercise %q: %w", spec, err)
		}
	}
	return list, nil
}

func (s *Shell) showPlanner(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("show")
	}
	p, err := s.planners.Get(ctx, args[0])
	if err != nil {
		return err
	}
	s.print.Section(p.Name)
	s.print.LabelValue("ID", p.ID)
	s.print.LabelValue("Target", p.TargetGender.Label())
	s.print.LabelValue("Goal", p.Goal.Label())
	for _, day := range domain.Weekdays {
		w, ok := p.Schedule.Get(day)
		if !ok {
			_, _ = dimColor.Fprintf(s.out, "  %s: rest\n", day.Label())
			continue
		}
		_, _ = labelColor.Fprintf(s.out, "  %s: %s\n", day.Label(), w.Name)
		items := make([]string, len(w.Exercises))
		for i, e := range w.Exercises {
			items[i] = e.Name + "  " + service.ExerciseSummary(e)
		}
		s.print.List(items, 2)
	}
	return nil
}

func (s *Shell) removeDay(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("remove-day")
	}
	day, err := domain.ParseWeekday(args[1])
	if err != nil {
		return err
	}
	removed, err := s.schedules.RemoveDay(ctx, args[0], day, s.confirm)
	if err != nil {
		return err
	}
	if removed {
		s.print.Success("Cleared " + day.Label())
	} else {
		s.print.Warning(day.Label() + " unchanged")
	}
	return nil
}

func (s *Shell) listStudents(ctx context.Context, _ []string) error {
	students, err := s.students.List(ctx)
	if err != nil {
		return err
	}
	s.print.Section("Students")
	if len(students) == 0 {
		s.print.EmptyState("No students registered.")
		return nil
	}
	rows := make([][]string, len(students))
	for i, st := range students {
		rows[i] = []string{st.ID, st.Name, strconv.Itoa(st.Age), string(st.Gender), strconv.FormatFloat(st.BMI(), 'f', 1, 64), st.Phone}
	}
	s.print.Table([]string{"ID", "Name", "Age", "Gender", "BMI", "Phone"}, rows)
	return nil
}

func usageError(name string) error {
	return fmt.Errorf("usage: %s", commands[name].usage)
}

// splitArgs splits a command line on whitespace. Double quotes group words.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		inArg   bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inArg = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
