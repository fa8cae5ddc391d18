package settings

import "fmt"

// Validate checks that settings values are valid.
// Preconditions: settings must be non-nil.
func Validate(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	if err := validatePosition(settings.Position); err != nil {
		return err
	}
	if err := validateStatusFormat(settings.StatusFormat); err != nil {
		return err
	}
	if err := validateMatcher(settings.Matcher); err != nil {
		return err
	}
	if err := validateDisplay("titles", settings.Titles); err != nil {
		return err
	}
	if err := validateDisplay("badges", settings.Badges); err != nil {
		return err
	}

	return nil
}

func validatePosition(position string) error {
	if position == "" {
		return nil
	}
	if position != PositionTop && position != PositionBottom {
		return fmt.Errorf("invalid position value: %s", position)
	}
	return nil
}

func validateStatusFormat(format string) error {
	if format == "" {
		return nil
	}
	switch format {
	case StatusFormatCompact, StatusFormatDetailed, StatusFormatCountOnly:
		return nil
	default:
		return fmt.Errorf("invalid statusFormat value: %s", format)
	}
}

func validateMatcher(matcher string) error {
	if matcher == "" {
		return nil
	}
	switch matcher {
	case MatcherSubstring, MatcherToken, MatcherRegex:
		return nil
	default:
		return fmt.Errorf("invalid matcher value: %s", matcher)
	}
}

func validateDisplay(field, value string) error {
	if value == "" {
		return nil
	}
	if value != DisplayShow && value != DisplayHide {
		return fmt.Errorf("invalid %s value: %s", field, value)
	}
	return nil
}

// validate is an alias for Validate for internal use.
func validate(settings *Settings) error {
	return Validate(settings)
}
