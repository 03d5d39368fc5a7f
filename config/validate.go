package config

import (
	"fmt"

	"github.com/harkabeeparolus/pylendar/pkg/terrors"

	"github.com/spf13/viper"
)

func ValidateConfig() []error {
	var errs []error
	// logging.*
	{
		if err := validateLogLevel("logging.console-level"); err != nil {
			errs = append(errs, err)
		}
		if err := validateLogLevel("logging.file-level"); err != nil {
			errs = append(errs, err)
		}
	}

	// calendar.*
	{
		paths := viper.GetStringSlice("calendar.paths")
		if len(paths) == 0 {
			errs = append(errs, fmt.Errorf("%w: %w: config key 'calendar.paths' must not be empty", terrors.ErrConf, terrors.ErrValue))
		}
		for _, p := range paths {
			if p == "" {
				errs = append(errs, fmt.Errorf("%w: %w: config key 'calendar.paths' must not contain empty entries", terrors.ErrConf, terrors.ErrValue))
			}
		}
	}

	// window.*
	{
		if err := validateBSDWeekday("window.friday"); err != nil {
			errs = append(errs, err)
		}
		for _, key := range []string{"window.ahead", "window.friday-ahead", "window.behind"} {
			if err := validateTypeInt(key); err != nil {
				errs = append(errs, err)
				continue
			}
			if val := viper.GetInt(key); val < 0 {
				errs = append(errs, fmt.Errorf("%w: %w: config key '%s' must not be negative: '%d'", terrors.ErrConf, terrors.ErrValue, key, val))
			}
		}
	}

	return errs
}

func validateBSDWeekday(key string) error {
	if err := validateTypeInt(key); err != nil {
		return err
	}
	val := viper.GetInt(key)
	if val < 0 || val > 6 {
		return fmt.Errorf("%w: %w: config key '%s' must be between '0' (Sunday) and '6' (Saturday) and not '%d'", terrors.ErrConf, terrors.ErrValue, key, val)
	}
	return nil
}

func validateLogLevel(key string) error {
	if err := validateTypeInt(key); err != nil {
		return err
	}
	val := viper.GetInt(key)
	if val < -1 || val > 5 {
		return fmt.Errorf("%w: %w: config key '%s' must be between '-1' and '5' and not '%d'", terrors.ErrConf, terrors.ErrValue, key, val)
	}
	return nil
}

func validateTypeInt(key string) error {
	raw := viper.Get(key)
	switch raw.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return nil
	default:
		return fmt.Errorf("%w: %w: config key '%s' must be of an int type not '%T'", terrors.ErrConf, terrors.ErrType, key, raw)
	}
}
