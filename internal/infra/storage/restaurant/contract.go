package restaurant

import "github.com/m04kA/RSV-ReservationService/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
