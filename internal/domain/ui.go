package domain

// UI renders workflow results. Implementations live in the controller
// package.
type UI interface {
	Start() error
	Close()
	// DisplayReport renders the outcomes of check or find.
	DisplayReport(report Report) error
	// DisplayTestReport renders the result of checking rule examples.
	DisplayTestReport(report TestReport) error
	// DisplayError renders a failure that ended the run, such as a
	// configuration or fatal error.
	DisplayError(err error) error
	DisplayNotice(msg string)
}
