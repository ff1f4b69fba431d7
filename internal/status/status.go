// Package status defines the closed set of program status codes. Some of
// them terminate the process, others only classify the outcome of an
// internal operation (file downloads in particular).
package status

// Code is a program status value.
type Code int

const (
	OK                   Code = 0
	GeneralFailure       Code = 1
	DownloadFileFailed   Code = 2
	DownloadFileBypassed Code = 3
	InvalidCmdParam      Code = 4
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case GeneralFailure:
		return "general failure"
	case DownloadFileFailed:
		return "file download failed"
	case DownloadFileBypassed:
		return "file download bypassed"
	case InvalidCmdParam:
		return "invalid command parameter"
	}
	return "unknown"
}

// ExitCode maps a status to a process exit code. The file-download codes
// are internal operation results and never terminate the process.
func (c Code) ExitCode() int {
	switch c {
	case GeneralFailure:
		return int(GeneralFailure)
	case InvalidCmdParam:
		return int(InvalidCmdParam)
	}
	return 0
}

// Severity classifies a status for logging purposes.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

func (c Code) Severity() Severity {
	switch c {
	case GeneralFailure, DownloadFileFailed, InvalidCmdParam:
		return SeverityError
	case DownloadFileBypassed:
		return SeverityWarn
	}
	return SeverityInfo
}
