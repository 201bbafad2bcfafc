package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

func setLogging(w io.Writer, verbose bool) {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(w)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func logDebug(event string, message string) {
	log.WithFields(log.Fields{
		"event": event,
	}).Debug(message)
}

func logWarn(event string, err error, message string) {
	log.WithFields(log.Fields{
		"event": event,
		"error": err,
	}).Warn(message)
}
