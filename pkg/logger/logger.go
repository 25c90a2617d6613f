package logger

import (
	"log"
	"os"
)

// InfoLogger and ErrorLogger are the two process-wide loggers.
var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
)

// Init sets up the loggers. Must be called once at startup.
func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
