package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

func outputInfo(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, msg+"\n", args...)
}

func exit(msg string, args ...interface{}) {
	outputError(msg, args...)
	os.Exit(1)
}

func outputError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
