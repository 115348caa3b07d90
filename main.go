package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.pan-manager"
	AppName = "PAN Manager"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("pan-manager exited")
		os.Exit(1)
	}
}
