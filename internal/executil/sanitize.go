package executil

import "regexp"

var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(p|pass|password|passphrase|key|secret)=[^ ]+`),
	regexp.MustCompile(`(?i)(--password|--passphrase|--key|--secret|--token)=[^ ]+`),
}

// Sanitize returns a copy of args with secret-bearing values masked, for logging.
func Sanitize(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		for _, re := range sensitivePatterns {
			arg = re.ReplaceAllString(arg, "$1=****")
		}
		out[i] = arg
	}
	return out
}
