package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/harkabeeparolus/pylendar/config"
	"github.com/harkabeeparolus/pylendar/pkg/calendar"
	"github.com/harkabeeparolus/pylendar/pkg/calfile"
	"github.com/harkabeeparolus/pylendar/pkg/logging"
	"github.com/harkabeeparolus/pylendar/pkg/terrors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "pylendar",
	Short:        fmt.Sprintf("pylendar %s: a BSD calendar(1) style event reminder", version),
	SilenceUsage: true,
	RunE:         runCalendar,
}

func init() {
	cobra.OnInitialize(func() {
		arg, err := rootCmd.PersistentFlags().GetString("config")
		cobra.CheckErr(err)
		cobra.CheckErr(config.InitViper(arg))
		if errs := config.ValidateConfig(); len(errs) > 0 {
			cobra.CheckErr(errors.Join(errs...))
		}
		logging.ConsoleLevel = viper.GetInt("logging.console-level")
		if viper.GetBool("debug") {
			logging.ConsoleLevel = -1
		}
		cobra.CheckErr(logging.Initialize())
	})
	rootCmd.PersistentFlags().StringP("config", "c", "", "yaml config filepath")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debugging mode")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.Flags().StringP("file", "f", "", "path to the calendar file")
	rootCmd.Flags().IntP("ahead", "A", 0, "print events from today and the next num days (default 1, or 3 on Fridays)")
	rootCmd.Flags().IntP("ahead-exact", "W", 0, "like --ahead but never expands for the weekend")
	rootCmd.Flags().IntP("behind", "B", 0, "print events from today and the previous num days")
	viper.BindPFlag("window.behind", rootCmd.Flags().Lookup("behind"))
	rootCmd.Flags().IntP("friday", "F", 5, "BSD weekday number (0=Sun..6=Sat) treated as the day before the weekend")
	viper.BindPFlag("window.friday", rootCmd.Flags().Lookup("friday"))
	rootCmd.Flags().StringP("today", "t", "", "act as if today were [[[cc]yy]mm]dd")
	rootCmd.Flags().BoolP("weekday", "w", false, "print the weekday name in front of each event")
	viper.BindPFlag("print.weekday", rootCmd.Flags().Lookup("weekday"))
}

func Execute() error {
	return rootCmd.Execute()
}

func runCalendar(cmd *cobra.Command, args []string) error {
	defer logging.Close()

	today := time.Now()
	if arg, err := cmd.Flags().GetString("today"); err != nil {
		return err
	} else if arg != "" {
		today, err = calendar.ParseToday(arg, time.Now())
		if err != nil {
			return terrors.ErrorFlagParse("today", err)
		}
	}
	today = calendar.Date(today.Year(), today.Month(), today.Day())

	friday, err := calendar.BSDWeekday(viper.GetInt("window.friday"))
	if err != nil {
		return fmt.Errorf("%w: %w", terrors.ErrConf, err)
	}
	win := calendar.Window{
		Friday:       friday,
		DefaultAhead: viper.GetInt("window.ahead"),
		FridayAhead:  viper.GetInt("window.friday-ahead"),
	}

	// -W overrides -A; either one disables the default entirely
	var ahead *int
	for _, flag := range []string{"ahead", "ahead-exact"} {
		if cmd.Flags().Changed(flag) {
			val, err := cmd.Flags().GetInt(flag)
			if err != nil {
				return err
			}
			ahead = &val
		}
	}
	aheadDays, behindDays := win.AheadBehind(today, ahead, viper.GetInt("window.behind"))
	datesToCheck := calendar.DatesToCheck(today, aheadDays, behindDays)

	searchDirs := viper.GetStringSlice("calendar.paths")
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	path, err := calfile.FindCalendar(file, searchDirs)
	if errors.Is(err, terrors.ErrNotFound) {
		logging.Logger.Debug("no calendar file found, exiting")
		return nil
	} else if err != nil {
		return err
	}

	lines, err := calfile.NewProcessor(searchDirs).ProcessFile(path)
	if err != nil {
		return fmt.Errorf("could not read calendar file: %w", err)
	}
	lines = calfile.JoinContinuations(lines)

	anchors := calendar.BuildAnchors(lines, today.Year())
	parser := calendar.NewParser(anchors)

	logging.Logger.Debugf("file path = %s", path)
	logging.Logger.Debugf("today is %s", today.Format(time.DateOnly))
	logging.Logger.Debugf("ahead = %d, behind = %d", aheadDays, behindDays)

	events := calendar.MatchAll(lines, datesToCheck, parser)
	calendar.SortEvents(events)
	weekday := viper.GetBool("print.weekday")
	for _, event := range events {
		fmt.Fprintln(cmd.OutOrStdout(), event.Format(weekday))
	}
	return nil
}
