package config

// logConfiguration controls the per-subsystem loggers set up by
// internal/logging. Level follows op/go-logging's CRITICAL..DEBUG scale.
type logConfiguration struct {
	Level       string
	LogToFile   bool
	LogFilePath string
}

func init() {
	Settings.Log.Level = "info"
	Settings.Log.LogToFile = false
	Settings.Log.LogFilePath = "./chesscore.log"
}
