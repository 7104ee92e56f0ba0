package appointment

import "github.com/m04kA/SMC-AppointmentDesk/pkg/txmanager"

// DBExecutor общий интерфейс *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor
