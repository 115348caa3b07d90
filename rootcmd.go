package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/pan-manager/internal/config"
	"github.com/ytget/pan-manager/internal/manage"
	"github.com/ytget/pan-manager/internal/ui"
)

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "pan-manager",
		Short:         "Desktop form for Palo Alto Networks firewalls and Panorama",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.LoadOptions(v)
			if err != nil {
				return err
			}
			config.ConfigureLogger(logrus.StandardLogger(), opts)
			run(logrus.StandardLogger())
			return nil
		},
	}

	if err := config.BindFlags(cmd, v); err != nil {
		// Flags are declared right above; a failure here is a programming error
		panic(err)
	}
	return cmd
}

// run opens the main window and blocks until it is closed
func run(logger *logrus.Logger) {
	logger.WithField("version", version).Infof("%s starting", AppName)

	myApp := app.NewWithID(AppID)

	myApp.Settings().SetTheme(ui.NewFormTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Connect options are replaced from settings by the form
	manager := manage.NewService(nil, config.NewSettings(myApp).ConnectOptions(), logger)

	ui.NewRootUI(myWindow, myApp, manager, logger)

	myWindow.ShowAndRun()

	logger.Info("window closed")
}
