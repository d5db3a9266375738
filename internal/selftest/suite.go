// Package selftest is the sketch's built-in test mode: a small describe/it
// runner that checks the drawing model from inside the running program and
// logs one line per case.
//
// Cases assert with testify; T satisfies assert.TestingT.
package selftest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// T collects the failures of a single case.
type T struct {
	failures []string
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.failures = append(t.failures, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (t *T) Failed() bool { return len(t.failures) > 0 }

type Result struct {
	Name    string
	Passed  bool
	Message string
}

type Report struct {
	Total, Passed, Failed int
	Results               []Result
}

func (r Report) String() string {
	return fmt.Sprintf("%d tests | %d passed | %d failed", r.Total, r.Passed, r.Failed)
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

type Suite struct {
	logger *log.Logger
	prefix string
	report Report
}

func NewSuite(logger *log.Logger) *Suite {
	if logger == nil {
		logger = log.Default()
	}
	return &Suite{logger: logger}
}

// Describe groups cases; their names are prefixed with name.
func (s *Suite) Describe(name string, fn func()) {
	outer := s.prefix
	s.prefix = outer + name + " "
	defer func() { s.prefix = outer }()
	fn()
}

// It runs one case. A panic fails the case instead of aborting the run.
func (s *Suite) It(name string, fn func(t *T)) {
	full := s.prefix + name
	t := &T{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
			}
		}()
		fn(t)
	}()

	s.report.Total++
	res := Result{Name: full, Passed: !t.Failed()}
	if res.Passed {
		s.report.Passed++
		s.logger.Info("pass", "case", full)
	} else {
		s.report.Failed++
		res.Message = strings.Join(t.failures, "; ")
		s.logger.Error("fail", "case", full, "err", res.Message)
	}
	s.report.Results = append(s.report.Results, res)
}

func (s *Suite) Report() Report {
	r := s.report
	r.Results = append([]Result(nil), s.report.Results...)
	return r
}
