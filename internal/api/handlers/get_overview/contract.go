package get_overview

import "github.com/m04kA/SMC-AppointmentDesk/internal/domain"

type Calculator interface {
	Overview() *domain.DayOverview
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
