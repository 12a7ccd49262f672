// Package console implements the interactive menu through which a
// professor drives the gradebook. It only calls gradebook operations and
// prints the Results they return.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/alem-hub/gradebook/internal/domain/gradebook"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// Menu choices.
const (
	choiceAddCourse      = "1"
	choiceAddGroup       = "2"
	choiceAddStudent     = "3"
	choiceRegisterGrade  = "4"
	choiceShowReport     = "5"
	choiceApprovedPct    = "6"
	choiceExit           = "7"
	choiceCancelSelector = "0"
)

// Session is one interactive run of the menu over a Professor's records.
// It is not safe for concurrent use.
type Session struct {
	id   string
	prof *gradebook.Professor
	in   io.Reader
	out  io.Writer
	log  *logger.Logger

	// lines is fed by the reader goroutine started in Run; done stops it.
	lines   chan inputLine
	done    chan struct{}
	readErr error
}

// inputLine is one line of input, or the error that ended input.
type inputLine struct {
	text string
	err  error
}

// NewSession creates a session reading commands from in and writing to out.
// A nil log discards diagnostics.
func NewSession(prof *gradebook.Professor, in io.Reader, out io.Writer, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	id := uuid.NewString()
	sessionLog := log.With(
		logger.Component("console"),
		logger.SessionID(id),
		logger.ProfessorID(prof.ID()),
	)
	return &Session{
		id:   id,
		prof: prof,
		in:   in,
		out:  out,
		log:  sessionLog,
	}
}

// ID returns the session identifier attached to every log entry.
func (s *Session) ID() string { return s.id }

// Run loops over the menu until the user exits, input is exhausted, or ctx
// is cancelled. Cancellation also ends a prompt that is waiting for input;
// the reader goroutine stays blocked on in until that read returns.
// Run must be called at most once per Session.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started")

	s.lines = make(chan inputLine)
	s.done = make(chan struct{})
	defer close(s.done)
	go s.readLines(bufio.NewReader(s.in))

	for {
		if err := ctx.Err(); err != nil {
			s.log.Info("session cancelled", logger.Err(err))
			return nil
		}

		s.println(menuText)
		choice, ok := s.prompt(ctx, "Enter your choice: ")
		if !ok {
			return s.finish(ctx)
		}

		var alive bool
		switch strings.TrimSpace(choice) {
		case choiceAddCourse:
			alive = s.addCourse(ctx)
		case choiceAddGroup:
			alive = s.addGroup(ctx)
		case choiceAddStudent:
			alive = s.addStudent(ctx)
		case choiceRegisterGrade:
			alive = s.registerGrade(ctx)
		case choiceShowReport:
			alive = s.showReport(ctx)
		case choiceApprovedPct:
			alive = s.showApprovedPercentage(ctx)
		case choiceExit:
			s.println("Exiting application. Goodbye!")
			s.log.Info("session ended")
			return nil
		default:
			s.println("Invalid choice. Please try again.")
			alive = true
		}

		if !alive {
			return s.finish(ctx)
		}
	}
}

// finish ends the session on cancellation or exhausted input, surfacing
// read errors.
func (s *Session) finish(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		s.log.Info("session cancelled", logger.Err(err))
		return nil
	}
	if s.readErr != nil {
		s.log.Error("reading input failed", logger.Err(s.readErr))
		return fmt.Errorf("read input: %w", s.readErr)
	}
	s.log.Info("session ended", logger.String("reason", "end of input"))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// MENU ACTIONS
// Each action returns false only when input is exhausted or the session
// is cancelled.
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) addCourse(ctx context.Context) bool {
	name, ok := s.prompt(ctx, "Enter course name: ")
	if !ok {
		return false
	}
	code, ok := s.prompt(ctx, "Enter course code: ")
	if !ok {
		return false
	}

	res := s.prof.AddCourse(gradebook.NewCourse(name, code))
	s.println(res.Message())
	s.trace("add_course", res.OK(), res.Message(), logger.CourseCode(code))
	return true
}

func (s *Session) addGroup(ctx context.Context) bool {
	course, ok := s.selectCourse(ctx)
	if !ok || course == nil {
		return ok
	}
	name, ok := s.prompt(ctx, "Enter new group name: ")
	if !ok {
		return false
	}

	res := course.AddGroup(gradebook.NewGroup(name))
	s.println(res.Message())
	s.trace("add_group", res.OK(), res.Message(), logger.CourseCode(course.Code()), logger.GroupName(name))
	return true
}

func (s *Session) addStudent(ctx context.Context) bool {
	course, group, ok := s.selectCourseAndGroup(ctx)
	if !ok || group == nil {
		return ok
	}

	id, ok := s.prompt(ctx, "Enter student ID: ")
	if !ok {
		return false
	}
	name, ok := s.prompt(ctx, "Enter student name: ")
	if !ok {
		return false
	}
	kind, ok := s.prompt(ctx, "Is the student (P)resencial or (D)istancia? (P/D): ")
	if !ok {
		return false
	}

	variant, err := gradebook.ParseVariant(kind)
	if err != nil {
		s.println("Invalid student type. Please enter P or D.")
		return true
	}

	var student gradebook.Student
	switch variant {
	case gradebook.VariantRemote:
		platform, ok := s.prompt(ctx, "Enter connection platform (e.g., Zoom, Teams): ")
		if !ok {
			return false
		}
		student = gradebook.NewRemoteStudent(id, name, platform)
	default:
		student = gradebook.NewOnSiteStudent(id, name)
	}

	res := course.AddStudentToGroup(group.Name(), student)
	s.println(res.Message())
	s.trace("add_student", res.OK(), res.Message(),
		logger.CourseCode(course.Code()), logger.GroupName(group.Name()), logger.StudentID(id))
	return true
}

func (s *Session) registerGrade(ctx context.Context) bool {
	course, group, ok := s.selectCourseAndGroup(ctx)
	if !ok || group == nil {
		return ok
	}

	id, ok := s.prompt(ctx, "Enter student ID: ")
	if !ok {
		return false
	}
	if _, found := group.FindStudent(id); !found {
		s.printf("Student with ID %s not found in group %s.\n", id, group.Name())
		return true
	}

	assessment, ok := s.prompt(ctx, "Enter assessment name (e.g., Midterm, Homework 1): ")
	if !ok {
		return false
	}
	raw, ok := s.prompt(ctx, "Enter score (0-100): ")
	if !ok {
		return false
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		s.println("Invalid score. Please enter a number between 0 and 100.")
		return true
	}

	res := course.RegisterGradeInGroup(group.Name(), id, assessment, score)
	s.println(res.Message())
	s.trace("register_grade", res.OK(), res.Message(),
		logger.CourseCode(course.Code()), logger.GroupName(group.Name()),
		logger.StudentID(id), logger.Assessment(assessment), logger.Score(score))
	return true
}

func (s *Session) showReport(ctx context.Context) bool {
	course, group, ok := s.selectCourseAndGroup(ctx)
	if !ok || group == nil {
		return ok
	}

	res := course.GroupReport(group.Name())
	if res.OK() {
		s.println(res.Data())
	} else {
		s.println(res.Message())
	}
	s.trace("group_report", res.OK(), res.Message(),
		logger.CourseCode(course.Code()), logger.GroupName(group.Name()))
	return true
}

func (s *Session) showApprovedPercentage(ctx context.Context) bool {
	course, group, ok := s.selectCourseAndGroup(ctx)
	if !ok || group == nil {
		return ok
	}

	res := course.GroupApprovedPercentage(group.Name())
	if res.OK() {
		s.println(formatApprovedPercentage(group.Name(), res.Data()))
	} else {
		s.println(res.Message())
	}
	s.trace("approved_percentage", res.OK(), res.Message(),
		logger.CourseCode(course.Code()), logger.GroupName(group.Name()))
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// SELECTORS
// A nil selection with ok=true means the user cancelled or nothing exists.
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) selectCourse(ctx context.Context) (*gradebook.Course, bool) {
	courses := s.prof.Courses()
	s.println(formatCourseList(courses))
	if len(courses) == 0 {
		return nil, true
	}

	idx, ok := s.selectIndex(ctx, "Enter the number of the course, or 0 to cancel: ",
		"Invalid course number. Please try again.", len(courses))
	if !ok || idx < 0 {
		return nil, ok
	}
	return courses[idx], true
}

func (s *Session) selectGroup(ctx context.Context, course *gradebook.Course) (*gradebook.Group, bool) {
	groups := course.Groups()
	s.println(formatGroupList(course))
	if len(groups) == 0 {
		return nil, true
	}

	idx, ok := s.selectIndex(ctx, "Enter the number of the group, or 0 to cancel: ",
		"Invalid group number. Please try again.", len(groups))
	if !ok || idx < 0 {
		return nil, ok
	}
	return groups[idx], true
}

func (s *Session) selectCourseAndGroup(ctx context.Context) (*gradebook.Course, *gradebook.Group, bool) {
	course, ok := s.selectCourse(ctx)
	if !ok || course == nil {
		return nil, nil, ok
	}
	group, ok := s.selectGroup(ctx, course)
	if !ok || group == nil {
		return nil, nil, ok
	}
	return course, group, true
}

// selectIndex prompts until the user enters 1..n (returned zero-based) or
// 0 to cancel (returned as -1).
func (s *Session) selectIndex(ctx context.Context, label, outOfRange string, n int) (int, bool) {
	for {
		raw, ok := s.prompt(ctx, label)
		if !ok {
			return -1, false
		}
		choice := strings.TrimSpace(raw)
		if choice == choiceCancelSelector {
			return -1, true
		}
		num, err := strconv.Atoi(choice)
		if err != nil {
			s.println("Invalid input. Please enter a number.")
			continue
		}
		if num < 1 || num > n {
			s.println(outOfRange)
			continue
		}
		return num - 1, true
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// I/O HELPERS
// ─────────────────────────────────────────────────────────────────────────────

// readLines delivers input lines to s.lines until in fails or the session
// is done. Lines have no length limit. The final entry carries the error
// that ended input (io.EOF included).
func (s *Session) readLines(in *bufio.Reader) {
	defer close(s.lines)
	for {
		text, err := in.ReadString('\n')
		if text != "" {
			select {
			case s.lines <- inputLine{text: text}:
			case <-s.done:
				return
			}
		}
		if err != nil {
			select {
			case s.lines <- inputLine{err: err}:
			case <-s.done:
			}
			return
		}
	}
}

// prompt writes label and waits for one line. ok is false once input is
// exhausted or ctx is cancelled.
func (s *Session) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if ctx.Err() != nil {
		fmt.Fprintln(s.out)
		return "", false
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", false
	case line, open := <-s.lines:
		if !open || line.err != nil {
			if line.err != nil && !errors.Is(line.err, io.EOF) {
				s.readErr = line.err
			}
			fmt.Fprintln(s.out)
			return "", false
		}
		return strings.TrimRight(line.text, "\r\n"), true
	}
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// trace logs the outcome of a menu action: successes at debug, failures at info.
func (s *Session) trace(op string, ok bool, message string, fields ...logger.Field) {
	fields = append(fields, logger.Operation(op), logger.Outcome(message), logger.Bool("ok", ok))
	if ok {
		s.log.Debug("operation succeeded", fields...)
		return
	}
	s.log.Info("operation failed", fields...)
}
