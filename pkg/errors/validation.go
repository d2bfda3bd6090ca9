package errors

// Shell-side validation for engine inputs. The engine itself clamps rather
// than errors, so these checks exist to give users a real message instead
// of a silently adjusted drawing.

// ValidateViewport checks that both viewport dimensions are positive.
func ValidateViewport(width, height float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidDimension, "viewport width must be positive, got %g", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidDimension, "viewport height must be positive, got %g", height)
	}
	return nil
}

// ValidateSettings checks separation and quantity ranges.
func ValidateSettings(separation float64, quantity int) error {
	if separation < 0 {
		return New(ErrCodeInvalidSetting, "separation must be non-negative, got %g", separation)
	}
	if quantity < 1 {
		return New(ErrCodeInvalidSetting, "quantity target must be at least 1, got %d", quantity)
	}
	return nil
}

// validFormats is the set of supported export formats.
var validFormats = map[string]bool{"svg": true, "json": true, "png": true, "pdf": true}

// ValidateFormat checks that an export format is supported.
func ValidateFormat(format string) error {
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be 'svg', 'json', 'png', or 'pdf')", format)
	}
	return nil
}

// validStyles is the set of supported visual styles.
var validStyles = map[string]bool{"flat": true, "sketch": true}

// ValidateStyle checks that a visual style is supported.
func ValidateStyle(style string) error {
	if !validStyles[style] {
		return New(ErrCodeInvalidStyle, "invalid style: %q (must be 'flat' or 'sketch')", style)
	}
	return nil
}
