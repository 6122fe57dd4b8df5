package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks basic email shape. Deliverability is not verified.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
