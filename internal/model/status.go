package model

import "fmt"

// ExitStatus is the process exit code reported by the CLI.
type ExitStatus int

const (
	// ExitOK means the run finished and found nothing.
	ExitOK ExitStatus = 0
	// ExitError means the run could not complete.
	ExitError ExitStatus = 1
	// ExitFailure means issues were found or rule tests failed.
	ExitFailure ExitStatus = 2
	// ExitConfigNotFound means the configuration file does not exist.
	ExitConfigNotFound ExitStatus = 3
	// ExitConfigSyntaxError means the configuration file is not valid YAML.
	ExitConfigSyntaxError ExitStatus = 4
	// ExitConfigSchemaError means the configuration file has the wrong shape.
	ExitConfigSchemaError ExitStatus = 5
	// ExitConfigUnknownError means the configuration file failed to load for another reason.
	ExitConfigUnknownError ExitStatus = 6
)

// ExitStatuses lists every status in code order.
var ExitStatuses = []ExitStatus{
	ExitOK,
	ExitError,
	ExitFailure,
	ExitConfigNotFound,
	ExitConfigSyntaxError,
	ExitConfigSchemaError,
	ExitConfigUnknownError,
}

func (s ExitStatus) String() string {
	switch s {
	case ExitOK:
		return "OK"
	case ExitError:
		return "ERROR"
	case ExitFailure:
		return "FAILURE"
	case ExitConfigNotFound:
		return "CONFIG_FILE_NOT_FOUND"
	case ExitConfigSyntaxError:
		return "CONFIG_FILE_SYNTAX_ERROR"
	case ExitConfigSchemaError:
		return "CONFIG_FILE_SCHEMA_ERROR"
	case ExitConfigUnknownError:
		return "CONFIG_FILE_UNKNOWN_ERROR"
	default:
		return fmt.Sprintf("ExitStatus(%d)", int(s))
	}
}

// Code returns the numeric exit code.
func (s ExitStatus) Code() int {
	return int(s)
}
